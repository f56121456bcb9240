package gateway

import (
	"bytes"
	"net/http"

	"github.com/pharmanet/pharmacy-console/internal/export"
	"github.com/pharmanet/pharmacy-console/internal/service/user"
	pkghttp "github.com/pharmanet/pharmacy-console/pkg/http"
	"github.com/pharmanet/pharmacy-console/pkg/log"
)

type exportUsersHandler struct {
	users  *user.Service
	logger log.Logger
}

// NewExportUsersHandler downloads the user directory as CSV.
func NewExportUsersHandler(users *user.Service, logger log.Logger) pkghttp.Handler {
	return exportUsersHandler{users: users, logger: logger}
}

func (h exportUsersHandler) Method() string {
	return http.MethodGet
}

func (h exportUsersHandler) Path() string {
	return "/admin/users/export"
}

func (h exportUsersHandler) HTTPHandler() pkghttp.HandlerFunc {
	return func(w pkghttp.ResponseWriter, r *http.Request) error {
		ctx := r.Context()
		records, err := h.users.List(ctx)
		if err != nil {
			return writeServiceError(ctx, h.logger, w, err)
		}

		var buf bytes.Buffer
		if err = export.WriteCSV(&buf, records); err != nil {
			return err
		}

		w.SetHeader("Content-Disposition", `attachment; filename="users.csv"`).
			SetBody("text/csv", buf.Bytes())
		return nil
	}
}
