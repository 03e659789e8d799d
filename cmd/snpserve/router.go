package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/interpose/middleware"
	"github.com/justinas/alice"
)

func router(config *Global) http.Handler {
	router := mux.NewRouter()
	GET := router.Methods("GET", "HEAD").Subrouter()

	h := handler{Global: config}

	GET.HandleFunc("/", h.Index).Name("index")
	GET.HandleFunc("/snps", h.SNPs).Name("snps")
	GET.HandleFunc("/tables/{table:(?:sequences|types|positions|spectrum)}", h.Table).Name("table")
	GET.HandleFunc("/charts/{chart:(?:sequences|types|heatmap)}.png", h.Chart).Name("chart")
	GET.HandleFunc("/export.csv", h.ExportCSV).Name("export")

	standard := alice.New(
		// Log all requests to STDOUT
		middleware.GorillaLog(),
	)

	return standard.Then(router)
}
