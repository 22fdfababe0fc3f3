package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces canonical JSON for the account store.
//
// Differences from json.Marshal:
//  1. Object keys sorted by UTF-16 code units
//  2. No HTML escaping (< > & are written as-is)
//  3. Strings are NFC normalized
//  4. No floats and no null (returns error)
//
// The same Accounts value always encodes to the same bytes, which keeps the
// persisted document stable across rewrites.
func MarshalCanonical(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonical(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("null is forbidden in canonical JSON")
	case string:
		return writeCanonicalString(buf, val)
	case int:
		fmt.Fprintf(buf, "%d", val)
	case int64:
		fmt.Fprintf(buf, "%d", val)
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return fmt.Errorf("array[%d]: %w", i, err)
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			return lessUTF16(keys[i], keys[j])
		})
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeCanonical(buf, val[k]); err != nil {
				return fmt.Errorf("object[%q]: %w", k, err)
			}
		}
		buf.WriteByte('}')
	case float32, float64:
		return fmt.Errorf("floats are forbidden in canonical JSON: %v", val)
	default:
		return fmt.Errorf("unsupported type for canonical JSON: %T", v)
	}
	return nil
}

// writeCanonicalString writes s as a JSON string after NFC normalization,
// without HTML escaping.
func writeCanonicalString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(norm.NFC.String(s)); err != nil {
		return err
	}
	// json.Encoder adds a trailing newline
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte{'\n'}))
	return nil
}

// lessUTF16 orders strings by UTF-16 code units, as RFC 8785 requires.
func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))
	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}
	return len(ua) < len(ub)
}

// EncodeAccounts serializes the whole account store to canonical JSON.
func EncodeAccounts(accounts Accounts) ([]byte, error) {
	doc := make(map[string]any, len(accounts))
	for username, acc := range accounts {
		doc[username] = accountToMap(acc)
	}
	data, err := MarshalCanonical(doc)
	if err != nil {
		return nil, fmt.Errorf("encode accounts: %w", err)
	}
	return data, nil
}

// DecodeAccounts parses a persisted account store. Empty input decodes to an
// empty store. Unknown fields are ignored so documents written by earlier
// versions still load.
func DecodeAccounts(data []byte) (Accounts, error) {
	accounts := Accounts{}
	if len(bytes.TrimSpace(data)) == 0 {
		return accounts, nil
	}
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode accounts: %w", err)
	}
	for username, acc := range accounts {
		acc.Username = username
		if acc.Logs == nil {
			acc.Logs = []LogEntry{}
		}
		if acc.Questions == nil {
			acc.Questions = []QuestionEvent{}
		}
		accounts[username] = acc
	}
	return accounts, nil
}

func accountToMap(acc Account) map[string]any {
	logs := make([]any, len(acc.Logs))
	for i, l := range acc.Logs {
		logs[i] = map[string]any{
			"text": l.Text,
			"date": l.CapturedOn,
		}
	}
	questions := make([]any, len(acc.Questions))
	for i, q := range acc.Questions {
		questions[i] = map[string]any{
			"platform": q.Platform,
			"topic":    q.Topic,
			"number":   q.Number,
			"date":     q.SolvedOn,
		}
	}
	return map[string]any{
		"password":  acc.Password,
		"name":      acc.DisplayName,
		"logs":      logs,
		"questions": questions,
	}
}
