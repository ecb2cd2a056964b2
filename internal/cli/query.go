package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

// evalQuery runs a JSONPath expression against the raw API response and
// returns a printable result. Scalars print bare; composites print as JSON.
func evalQuery(raw []byte, expr string) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return "", queryErr(expr, fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig))
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", queryErr(expr, fmt.Errorf("response body is not valid JSON: %w", err))
	}

	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", queryErr(expr, err)
	}

	switch v := val.(type) {
	case nil:
		return "null", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		b, merr := json.MarshalIndent(v, "", "  ")
		if merr != nil {
			return "", queryErr(expr, merr)
		}
		return string(b), nil
	}
}

func queryErr(expr string, err error) error {
	return &domain.OpError{
		Op:   "cli.query",
		Kind: domain.KindInvalidConfig,
		Path: expr,
		Err:  err,
	}
}
