package recipe

import (
	"recipe/pkg/serrors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxNameLength = 255

// maxPrice is the exclusive upper bound of a numeric(5,2) price.
var maxPrice = decimal.NewFromInt(1000)

func validateName(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", serrors.With(serrors.ErrBadRequest, "%s: this field may not be blank", field)
	}
	if utf8.RuneCountInString(value) > maxNameLength {
		return "", serrors.With(serrors.ErrBadRequest,
			"%s: ensure this field has no more than %d characters", field, maxNameLength)
	}

	return value, nil
}

func validatePrice(price decimal.Decimal) error {
	if !price.Equal(price.Round(2)) {
		return serrors.With(serrors.ErrBadRequest, "price: ensure that there are no more than 2 decimal places")
	}
	if price.Abs().GreaterThanOrEqual(maxPrice) {
		return serrors.With(serrors.ErrBadRequest, "price: ensure that there are no more than 5 digits in total")
	}

	return nil
}

func validateNames(field string, names []string) ([]string, error) {
	out := make([]string, 0, len(names))
	for _, name := range names {
		valid, err := validateName(field, name)
		if err != nil {
			return nil, err
		}
		out = append(out, valid)
	}

	return out, nil
}

// ParseIDs parses a comma separated list of ids such as "1, 2,3". An empty
// string yields no ids.
func ParseIDs[T ~int64](field, s string) ([]T, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]T, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s: invalid id %q", field, part)
		}
		out = append(out, T(id))
	}

	return out, nil
}
