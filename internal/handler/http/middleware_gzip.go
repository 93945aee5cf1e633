// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/web-quiz/internal/app"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip. Empty responses (e.g. logout) are sent as is.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		supportsGzip := strings.Contains(req.Header.Get("Accept-Encoding"), "gzip")
		isGzipRequest := strings.Contains(req.Header.Get("Content-Encoding"), "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				http.Error(w, app.MsgInvalidGzip, http.StatusBadRequest)
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
			req.ContentLength = -1
		}

		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		gzipRW := &gzipResponseWriter{ResponseWriter: w}

		next.ServeHTTP(gzipRW, req)

		gzipRW.Close()
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter takes a pooled gzip.Writer on the first body write.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	wroteHeader bool
	status      int
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = statusCode
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	if w.gzipWriter == nil {
		if len(data) == 0 {
			return 0, nil
		}
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(w.status)

		w.gzipWriter = gzipWriterPool.Get().(*gzip.Writer)
		w.gzipWriter.Reset(w.ResponseWriter)
	}

	return w.gzipWriter.Write(data)
}

// Close flushes the compressed stream, or the bare status line when
// nothing was written.
func (w *gzipResponseWriter) Close() error {
	if w.gzipWriter == nil {
		if w.wroteHeader {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return nil
	}

	err := w.gzipWriter.Close()
	gzipWriterPool.Put(w.gzipWriter)
	w.gzipWriter = nil
	return err
}
