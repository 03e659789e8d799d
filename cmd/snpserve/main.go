package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	"cloud.google.com/go/storage"
	"github.com/carbocation/snpscan/compileinfo"
	"github.com/carbocation/snpscan/seqload"
)

var global *Global

func main() {
	errors := make(chan error, 1)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig,
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGUSR1,
	)

	var in seqload.Input
	var sequences flagSlice
	flag.StringVar(&in.Reference, "reference", "", "FASTA file whose first record is the reference sequence. May be gzipped and may be a gs:// path.")
	flag.Var(&sequences, "sequences", "FASTA file of sequences to compare against --reference. Pass once per file.")
	flag.StringVar(&in.VCF, "vcf", "", "VCF (or headerless VCF-like table) of pre-called variants. Mutually exclusive with --reference.")
	flag.StringVar(&in.Layout, "layout", "VCF", fmt.Sprint("Column layout for headerless variant tables. Options include: ", seqload.LayoutNames()))
	port := flag.Int("port", 9019, "Port for HTTP server")
	flag.Parse()

	in.Sequences = sequences
	if err := in.Validate(); err != nil {
		flag.PrintDefaults()
		log.Fatalln(err)
	}

	ctx := context.Background()

	var sclient *storage.Client
	if in.NeedsStorage() {
		var err error
		sclient, err = storage.NewClient(ctx)
		if err != nil {
			log.Fatalln(err)
		}
	}

	collection, ids, err := seqload.LoadCollection(ctx, in, sclient)
	if err != nil {
		log.Fatalln(err)
	}

	source := in.VCF
	if source == "" {
		source = fmt.Sprintf("%s vs %s", strings.Join(in.Sequences, ","), in.Reference)
	}

	global = &Global{
		Site:        "SNP Scan",
		Source:      source,
		BuildInfo:   compileinfo.Get(),
		log:         log.New(os.Stderr, log.Prefix(), log.Ldate|log.Ltime),
		SequenceIDs: ids,
		Collection:  collection,
	}

	global.log.Println(global.BuildInfo)
	global.log.Println("Launching", global.Site, "with", len(collection), "SNPs from", source)

	go func() {
		global.log.Println("Starting HTTP server on port", *port)
		if err := http.ListenAndServe(fmt.Sprintf(`:%d`, *port), router(global)); err != nil {
			errors <- err
			global.log.Println(err)
			sig <- syscall.SIGTERM
			return
		}
	}()

Outer:
	for {
		select {
		case sigl := <-sig:

			if sigl == syscall.SIGUSR1 {
				SigStatus()
				continue
			}

			// By default, exit
			global.log.Printf("\nExit: %s\n", sigl.String())

			break Outer

		case err := <-errors:
			if err == nil {
				global.log.Println("Finished")
				break Outer
			}

			// Return a status code indicating failure
			global.log.Println("Exiting due to error", err)
			os.Exit(1)
		}
	}
}

func SigStatus() {
	global.log.Println("There are", runtime.NumGoroutine(), "goroutines running")
}
