package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"resultsvc/internal/model"
)

const maxUploadBody = 100 << 10

const (
	msgFieldsRequired = "All fields are required!"
	msgUploaded       = "Result uploaded successfully!"
	msgDeleted        = "Result deleted successfully!"
	msgFetchFailed    = "Error fetching results"
	msgUploadFailed   = "Error uploading result"
	msgDeleteFailed   = "Error deleting result"
)

var errFieldsRequired = errors.New("all fields are required")

type ResultService interface {
	List(ctx context.Context, date string) ([]model.Result, error)
	Create(ctx context.Context, r model.Result) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type uploadRequest struct {
	Date       formValue
	Time       formValue
	CouponName formValue
	Number     formValue
}

func (req uploadRequest) validate() error {
	if req.Date == "" || req.Time == "" || req.CouponName == "" || req.Number == "" {
		return errFieldsRequired
	}
	return nil
}

func (req uploadRequest) result() model.Result {
	return model.Result{
		Date:       string(req.Date),
		Time:       string(req.Time),
		CouponName: string(req.CouponName),
		Number:     string(req.Number),
	}
}

func GetResultsHandler(svc ResultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := svc.List(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			slog.Error("error fetching results", "error", err)
			http.Error(w, msgFetchFailed, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(results); err != nil {
			slog.Error("encode results", "error", err)
		}
	}
}

func UploadResultHandler(svc ResultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeUpload(http.MaxBytesReader(w, r.Body, maxUploadBody))
		if err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := req.validate(); err != nil {
			http.Error(w, msgFieldsRequired, http.StatusBadRequest)
			return
		}

		id, err := svc.Create(r.Context(), req.result())
		if err != nil {
			slog.Error("error uploading result", "error", err)
			http.Error(w, msgUploadFailed, http.StatusInternalServerError)
			return
		}

		slog.Debug("result uploaded", "id", id)
		writeText(w, http.StatusOK, msgUploaded)
	}
}

func DeleteResultHandler(svc ResultService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")
		id, ok := parseID(raw)
		if !ok {
			// no integer row id can match
			slog.Debug("delete with non-integer id", "id", raw)
			writeText(w, http.StatusOK, msgDeleted)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			slog.Error("error deleting result", "id", id, "error", err)
			http.Error(w, msgDeleteFailed, http.StatusInternalServerError)
			return
		}

		writeText(w, http.StatusOK, msgDeleted)
	}
}

// parseID accepts any decimal literal that denotes an integer, so 1, 1.0
// and 1e0 all name row 1 the way an INTEGER column compares against text.
func parseID(raw string) (int64, bool) {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, true
	}
	if strings.ContainsAny(raw, "xXpP_") {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, msg)
}
