package service

import (
	"context"
	"net/http"

	"github.com/rs/cors"
)

// ReportServer serves the rendered report directory over HTTP so dashboards
// can link directly to per-run HTML reports.
type ReportServer struct {
	Dir    string
	ctx    context.Context
	server *http.Server
}

func (rs *ReportServer) Start(ctx context.Context, addr string) error {
	hdlr := http.NewServeMux()
	hdlr.Handle("/", http.FileServer(http.Dir(rs.Dir)))
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
	})
	server := &http.Server{
		Handler: c.Handler(hdlr),
		Addr:    addr,
	}
	rs.server = server
	rs.ctx = ctx
	return rs.server.ListenAndServe()
}

func (rs *ReportServer) Shutdown() error {
	if rs.server == nil {
		return nil
	}
	return rs.server.Shutdown(rs.ctx)
}
