package middleware

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

type etagWriter struct {
	http.ResponseWriter
	buf    bytes.Buffer
	status int
}

func (ew *etagWriter) WriteHeader(statusCode int) {
	if ew.status == 0 {
		ew.status = statusCode
	}
}

// Write buffers the body, it is sent once the hash is known.
func (ew *etagWriter) Write(b []byte) (int, error) {
	if ew.status == 0 {
		ew.status = http.StatusOK
	}

	return ew.buf.Write(b)
}

// bodyTag returns a weak entity tag of the body.
// The tag is weak because Compress may change the encoding of the same body.
func bodyTag(body []byte) string {
	sum := sha256.Sum256(body)
	return `W/"` + hex.EncodeToString(sum[:16]) + `"`
}

func matchTag(ifNoneMatch, tag string) bool {
	for _, t := range strings.Split(ifNoneMatch, ",") {
		t = strings.TrimSpace(t)
		if t == "*" || t == tag || "W/"+t == tag {
			return true
		}
	}

	return false
}

// ETag is a middleware that sets the ETag header of successful GET responses
// and answers 304 Not Modified when the client already holds the same body.
func ETag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		ew := &etagWriter{ResponseWriter: w}
		next.ServeHTTP(ew, r)

		if ew.status == 0 {
			ew.status = http.StatusOK
		}

		if ew.status == http.StatusOK {
			tag := bodyTag(ew.buf.Bytes())
			w.Header().Set("ETag", tag)

			if inm := r.Header.Get("If-None-Match"); inm != "" && matchTag(inm, tag) {
				w.Header().Del("Content-Type")
				w.Header().Del("Content-Length")
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}

		w.WriteHeader(ew.status)
		_, _ = w.Write(ew.buf.Bytes())
	})
}
