// Package pagination decodes page-number parameters from request
// metadata and computes result windows for paginated list responses.
// Paginated list messages carry a count field alongside their results;
// this package is the service-side counterpart that turns incoming page
// parameters into an offset/limit window.
package pagination

import (
	"fmt"

	"github.com/gorilla/schema"
)

const (
	// DefaultPageSize is used when neither the configuration nor the
	// request names a page size.
	DefaultPageSize = 100

	defaultPageParam     = "page"
	defaultPageSizeParam = "page_size"
)

var schemaDecoder = schema.NewDecoder()

func init() {
	schemaDecoder.IgnoreUnknownKeys(true)
}

// Config declares pagination for one service.
type Config struct {
	// PageSize is the page size used when the request names none.
	// Default: DefaultPageSize.
	PageSize int

	// MaxPageSize caps the page size a request may ask for.
	// 0 means no cap.
	MaxPageSize int

	// PageParam is the metadata key carrying the page number.
	// Default: "page".
	PageParam string

	// PageSizeParam is the metadata key carrying the page size.
	// Default: "page_size".
	PageSizeParam string
}

// Params is one decoded page request.
type Params struct {
	Page     int `schema:"page"`
	PageSize int `schema:"page_size"`
}

// Decode extracts page parameters from metadata-shaped values, applying
// defaults and the configured page-size cap. Unknown keys are ignored;
// a non-numeric or negative value is an error.
func (c Config) Decode(values map[string][]string) (Params, error) {
	canonical := map[string][]string{}
	if v, ok := values[c.pageParam()]; ok {
		canonical[defaultPageParam] = v
	}
	if v, ok := values[c.pageSizeParam()]; ok {
		canonical[defaultPageSizeParam] = v
	}

	var p Params
	if err := schemaDecoder.Decode(&p, canonical); err != nil {
		return Params{}, fmt.Errorf("decode pagination params: %w", err)
	}
	if p.Page < 0 || p.PageSize < 0 {
		return Params{}, fmt.Errorf("pagination params must not be negative: page=%d page_size=%d", p.Page, p.PageSize)
	}

	if p.Page == 0 {
		p.Page = 1
	}
	if p.PageSize == 0 {
		p.PageSize = c.pageSize()
	}
	if c.MaxPageSize > 0 && p.PageSize > c.MaxPageSize {
		p.PageSize = c.MaxPageSize
	}
	return p, nil
}

// Window computes the offset and limit for a result set of the given
// total size. Pages past the end yield an empty window.
func (p Params) Window(total int) (offset, limit int) {
	offset = (p.Page - 1) * p.PageSize
	if offset >= total {
		return total, 0
	}
	limit = p.PageSize
	if offset+limit > total {
		limit = total - offset
	}
	return offset, limit
}

func (c Config) pageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return DefaultPageSize
}

func (c Config) pageParam() string {
	if c.PageParam != "" {
		return c.PageParam
	}
	return defaultPageParam
}

func (c Config) pageSizeParam() string {
	if c.PageSizeParam != "" {
		return c.PageSizeParam
	}
	return defaultPageSizeParam
}
