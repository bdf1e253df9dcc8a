package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pkg/errors"

	"github.com/banterhq/banter/internal/http/handler/webui/common/component"
	"github.com/banterhq/banter/internal/slogx"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

// HandleError renders a generic error page. Internal causes never reach
// the response; only UserFacingError messages are shown.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	vmodel := component.ErrorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	w.WriteHeader(statusCode)

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(r.Context(), "unexpected error", slogx.Error(errors.WithStack(err)))
	}

	errorPage := component.ErrorPage(vmodel)
	if err := errorPage.Render(r.Context(), w); err != nil {
		slog.ErrorContext(r.Context(), "could not render error page", slogx.Error(errors.WithStack(err)))
	}
}

func RenderPage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	templ.Handler(page).ServeHTTP(w, r)
}
