package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)

	if rw.Status() != http.StatusNotFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusNotFound)
	}
	if w.Code != http.StatusNotFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_ImplicitStatus(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	n, err := rw.Write([]byte("hello"))
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != 5 || rw.Size() != 5 {
		t.Errorf("wrote %d bytes, Size() = %d, want 5", n, rw.Size())
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("Status() = %d, want 200", rw.Status())
	}
}

func TestResponseWriter_HooksRunOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	var order []string
	rw.OnBeforeWrite(func() {
		order = append(order, "first")
		rw.Header().Set("X-Hook", "ran")
	})
	rw.OnBeforeWrite(func() { order = append(order, "second") })

	rw.WriteHeader(http.StatusCreated)
	_, _ = rw.Write([]byte("x"))
	_, _ = rw.Write([]byte("y"))

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("hooks ran as %v, want [first second]", order)
	}
	if got := w.Header().Get("X-Hook"); got != "ran" {
		t.Errorf("header set in hook = %q, want %q", got, "ran")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
	rw.Flush()
	if !w.Flushed {
		t.Error("Flush() was not forwarded")
	}
}
