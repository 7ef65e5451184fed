package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
)

// Message is the body of every non-data response.
type Message struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Message{Message: msg})
}

var ErrBadBody = errors.New("malformed request body")

const maxBody = 1 << 20

// Decode reads a JSON body, or a URL-encoded/multipart form into the string
// fields of dst using their json tag names.
func Decode(r *http.Request, dst any) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		r.Body = http.MaxBytesReader(nil, r.Body, maxBody)
		if err := r.ParseMultipartForm(maxBody); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return errors.Join(ErrBadBody, err)
		}
		return decodeForm(r, dst)
	default:
		if r.Body == nil || r.Body == http.NoBody {
			return nil
		}
		dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody))
		if err := dec.Decode(dst); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return errors.Join(ErrBadBody, err)
		}
		return nil
	}
}

func decodeForm(r *http.Request, dst any) error {
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("decode form: %T is not a struct pointer", dst)
	}
	v = v.Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() != reflect.String || !f.CanSet() {
			continue
		}
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			name = t.Field(i).Name
		}
		if val := r.FormValue(name); val != "" {
			f.SetString(val)
		}
	}
	return nil
}
