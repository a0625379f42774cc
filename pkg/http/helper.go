package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"smarttour/pkg/config"
	apperrors "smarttour/pkg/errors"
)

func ExtractLimitOffset(r *http.Request) (int, int64, error) {
	query := r.URL.Query()

	limit := 0
	if s := query.Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid limit parameter: " + s)
		}
		limit = v
	}

	var offset int64
	if s := query.Get("offset"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, 0, apperrors.InvalidInput("invalid offset parameter: " + s)
		}
		offset = v
	}

	return config.NormalizePaginationLimit(limit), config.NormalizeOffset(offset), nil
}

// DecodeBody decodes a JSON request body into v. Unknown fields are rejected.
func DecodeBody(r *http.Request, v any) error {
	present, err := DecodeOptionalBody(r, v)
	if err != nil {
		return err
	}
	if !present {
		return apperrors.InvalidInput("Request body cannot be empty")
	}
	return nil
}

// DecodeOptionalBody is DecodeBody for endpoints where the body may be omitted.
// It reports false, leaving v untouched, when the body is empty, including
// chunked requests whose length is unknown up front.
func DecodeOptionalBody(r *http.Request, v any) (bool, error) {
	if r.Body == nil || r.ContentLength == 0 {
		return false, nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return false, apperrors.PayloadTooLarge(tooLarge.Limit)
		}
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, apperrors.InvalidInput("Invalid request body: " + err.Error())
	}
	return true, nil
}
