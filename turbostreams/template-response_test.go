package turbostreams

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responding"
)

func newEchoContext(req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	return echo.New().NewContext(req, rec)
}

type stubEngine struct {
	output string
	err    error

	calls int
	names []string
	data  responding.Data
	req   *http.Request
}

func (e *stubEngine) Render(
	w io.Writer, names []string, data responding.Data, r *http.Request,
) error {
	e.calls++
	e.names = names
	e.data = data
	e.req = r
	if e.err != nil {
		return e.err
	}
	_, err := io.WriteString(w, e.output)
	return err
}

func TestTemplateResponseMaterialize(t *testing.T) {
	engine := &stubEngine{output: "<p>rendered</p>"}
	req := httptest.NewRequest(http.MethodPost, "/messages", nil)
	resp := NewTemplateResponse(
		engine, req, []string{"messages/message.partial.tmpl"},
		responding.Data{"x": 1}, ActionReplace, "msg-1",
	)

	body, err := resp.Materialize()
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	want := `<turbo-stream action="replace" target="msg-1"><p>rendered</p></turbo-stream>`
	if string(body) != want {
		t.Errorf("Materialize() = %q, want %q", body, want)
	}

	if engine.req != req {
		t.Error("engine should receive the original request")
	}
	if len(engine.names) != 1 || engine.names[0] != "messages/message.partial.tmpl" {
		t.Errorf("engine received names %v", engine.names)
	}
	if engine.data["x"] != 1 {
		t.Errorf("caller data key x = %v, want 1", engine.data["x"])
	}
	if engine.data[DataKeyAction] != "replace" {
		t.Errorf("data[%s] = %v, want replace", DataKeyAction, engine.data[DataKeyAction])
	}
	if engine.data[DataKeyTarget] != "msg-1" {
		t.Errorf("data[%s] = %v, want msg-1", DataKeyTarget, engine.data[DataKeyTarget])
	}
	if engine.data[DataKeyIsStream] != true {
		t.Errorf("data[%s] = %v, want true", DataKeyIsStream, engine.data[DataKeyIsStream])
	}
}

func TestTemplateResponseMemoizes(t *testing.T) {
	engine := &stubEngine{output: "<p>once</p>"}
	resp := NewTemplateResponse(
		engine, httptest.NewRequest(http.MethodGet, "/", nil),
		[]string{"a.tmpl"}, nil, ActionUpdate, "box",
	)

	first, err := resp.Materialize()
	if err != nil {
		t.Fatalf("Materialize() error = %v", err)
	}
	second, err := resp.Materialize()
	if err != nil {
		t.Fatalf("second Materialize() error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("repeated Materialize() should return identical bytes")
	}
	if engine.calls != 1 {
		t.Errorf("engine rendered %d times, want 1", engine.calls)
	}

	if _, err := resp.Rerender(); err != nil {
		t.Fatalf("Rerender() error = %v", err)
	}
	if engine.calls != 2 {
		t.Errorf("engine rendered %d times after Rerender, want 2", engine.calls)
	}
}

func TestTemplateResponseReservedKeysWin(t *testing.T) {
	engine := &stubEngine{output: "x"}
	resp := NewTemplateResponse(
		engine, httptest.NewRequest(http.MethodGet, "/", nil), []string{"a.tmpl"},
		responding.Data{DataKeyTarget: "spoofed", "y": 2}, ActionAppend, "real",
	)

	if resp.Data()[DataKeyTarget] != "real" {
		t.Errorf("data[%s] = %v, want real", DataKeyTarget, resp.Data()[DataKeyTarget])
	}
	if resp.Data()["y"] != 2 {
		t.Errorf("data[y] = %v, want 2", resp.Data()["y"])
	}
}

func TestTemplateResponseEngineError(t *testing.T) {
	engine := &stubEngine{err: errors.New("missing template")}
	resp := NewTemplateResponse(
		engine, httptest.NewRequest(http.MethodGet, "/", nil),
		[]string{"a.tmpl"}, nil, ActionAppend, "list",
	)

	if _, err := resp.Materialize(); err == nil {
		t.Fatal("Materialize() should propagate engine errors")
	}
	if len(resp.Base().Body) != 0 {
		t.Error("failed materialization should leave no partial body")
	}
}

func TestTemplateResponseWriteTo(t *testing.T) {
	engine := &stubEngine{output: "<span>ok</span>"}
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	resp := NewTemplateResponse(engine, req, []string{"a.tmpl"}, nil, ActionBefore, "row-2")

	rec := httptest.NewRecorder()
	if err := resp.WriteTo(newEchoContext(req, rec)); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if got := rec.Header().Get("Content-Type"); got != ContentType {
		t.Errorf("Content-Type = %q, want %q", got, ContentType)
	}
	want := `<turbo-stream action="before" target="row-2"><span>ok</span></turbo-stream>`
	if rec.Body.String() != want {
		t.Errorf("body = %q, want %q", rec.Body.String(), want)
	}
}
