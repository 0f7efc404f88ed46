package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Response her uç noktanın döndürdüğü tekdüze JSON zarfıdır. Kötü biçimli
// kimlikler 400, geri kalan tüm hatalar (bulunamadı dahil) 500 ile raporlanır;
// bu eşleme bilinçli olarak korunur.
type Response struct {
	Status    string      `json:"status"`
	Code      int         `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Errors    string      `json:"errors,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func statusLabel(code int) string {
	return fmt.Sprintf("%d %s", code, http.StatusText(code))
}

func writeSuccess(w http.ResponseWriter, code int, message string, data interface{}) {
	writeEnvelope(w, code, Response{
		Status:    statusLabel(code),
		Code:      code,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeError(w http.ResponseWriter, code int, message string, err error) {
	writeEnvelope(w, code, Response{
		Status:    statusLabel(code),
		Code:      code,
		Message:   message,
		Errors:    err.Error(),
		Timestamp: time.Now().UTC(),
	})
}

func writeEnvelope(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}
