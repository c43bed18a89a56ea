package convert

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// Builtins returns the stock converter set. The names mirror common
// datatype needs of mapping documents; callers can overwrite any of them.
func Builtins() map[string]Func {
	return map[string]Func{
		"value":  Value,
		"string": ToString,
		"int":    ToInt,
		"float":  ToFloat,
		"bool":   ToBool,
		"upper":  Upper,
		"lower":  Lower,
		"trim":   Trim,
		"b64enc": B64Enc,
		"b64dec": B64Dec,
	}
}

func Value(v any) (any, error) {
	return v, nil
}

func ToString(v any) (any, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case int:
		return strconv.Itoa(x), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}

func ToInt(v any) (any, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	case float64:
		return int64(x), nil
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int: %q: %w", x, err)
		}
		return i, nil
	default:
		return nil, fmt.Errorf("int: cannot convert %T", v)
	}
}

func ToFloat(v any) (any, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	case int:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return nil, fmt.Errorf("float: %q: %w", x, err)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("float: cannot convert %T", v)
	}
}

func ToBool(v any) (any, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return nil, fmt.Errorf("bool: %q: %w", x, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("bool: cannot convert %T", v)
	}
}

func Upper(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("upper only applies to strings, got %T", v)
	}
	return strings.ToUpper(s), nil
}

func Lower(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("lower only applies to strings, got %T", v)
	}
	return strings.ToLower(s), nil
}

func Trim(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("trim only applies to strings, got %T", v)
	}
	return strings.TrimSpace(s), nil
}

func B64Enc(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("b64enc only applies to strings, got %T", v)
	}
	return base64.StdEncoding.EncodeToString([]byte(s)), nil
}

func B64Dec(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("b64dec only applies to strings, got %T", v)
	}
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("b64dec: %w", err)
	}
	return string(d), nil
}
