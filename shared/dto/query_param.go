package dto

import (
	"net/http"
	"strconv"
	"strings"

	"lodge/shared/constant"
	"lodge/shared/failure"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func positive(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 1 {
		return 0, false
	}

	return parsed, true
}

// FromRequest populates QueryParams from the page, limit, sort_by and sort_dir query values.
// A page or limit that is not a positive integer is a bad request; limit is capped at
// constant.MaxValueLimit. With defaultRequest set, missing page and limit get their defaults.
// An unknown sort_dir is ignored and sort_by is checked later against the table columns.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != constant.Empty {
		pageInt, ok := positive(page)
		if !ok {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != constant.Empty {
		limitInt, ok := positive(limit)
		if !ok {
			return failure.InvalidLimitParam
		}

		q.Limit = min(limitInt, constant.MaxValueLimit)
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != constant.Empty {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}

	return nil
}
