package forms

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/sargassum-world/turboresponse/responding"
)

func newContext() echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/submit", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestUnprocessable(t *testing.T) {
	statuses := []int{
		http.StatusOK, http.StatusBadRequest, http.StatusForbidden,
		http.StatusInternalServerError,
	}
	for _, status := range statuses {
		handler := Unprocessable(func(c echo.Context) (*responding.Response, error) {
			resp := responding.NewResponse("", []byte("<form>errors</form>"))
			resp.Status = status
			resp.Header.Set("X-Form", "rejected")
			return resp, nil
		})

		resp, err := handler(newContext())
		if err != nil {
			t.Fatalf("handler error = %v", err)
		}
		if resp.Status != http.StatusUnprocessableEntity {
			t.Errorf("status %d rewritten to %d, want %d",
				status, resp.Status, http.StatusUnprocessableEntity)
		}
		if string(resp.Body) != "<form>errors</form>" {
			t.Errorf("body = %q, want untouched body", resp.Body)
		}
		if resp.Header.Get("X-Form") != "rejected" {
			t.Error("headers should pass through untouched")
		}
	}
}

func TestUnprocessableRunsAfterWrapped(t *testing.T) {
	var order []string
	handler := Unprocessable(func(c echo.Context) (*responding.Response, error) {
		order = append(order, "wrapped")
		return responding.NewResponse("", nil), nil
	})

	resp, err := handler(newContext())
	order = append(order, "returned")
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if len(order) != 2 || order[0] != "wrapped" {
		t.Errorf("order = %v, want the wrapped operation to run first", order)
	}
	if resp.Status != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.Status, http.StatusUnprocessableEntity)
	}
}

func TestUnprocessableError(t *testing.T) {
	handler := Unprocessable(func(c echo.Context) (*responding.Response, error) {
		return nil, errors.New("storage unavailable")
	})

	if _, err := handler(newContext()); err == nil {
		t.Error("errors from the wrapped operation should propagate")
	}
}
