package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
)

// validation statuses carry structured field errors (Spring's
// MethodArgumentNotValid shapes).
func isValidationStatus(status int) bool {
	return status == http.StatusBadRequest || status == http.StatusUnprocessableEntity
}

// normalize maps a non-success response body onto a single Error. Rules are
// evaluated in priority order:
//
//  1. validation status + {"errors": {field: msg, ...}}  -> values joined with ", "
//  2. validation status + [{defaultMessage|message}, ...] -> messages joined with ", "
//  3. {"message": m} -> m (wins over a coexisting "error" field)
//  4. {"error": e}   -> e
//  5. anything else  -> "Error <status>: <status text>"
//
// gjson iterates object members in document order, which keeps the joined
// validation message stable.
func normalize(status int, body []byte) *Error {
	res := gjson.ParseBytes(body)

	if isValidationStatus(status) {
		if errs := res.Get("errors"); errs.IsObject() {
			var parts []string
			errs.ForEach(func(_, value gjson.Result) bool {
				parts = append(parts, value.String())
				return true
			})
			if len(parts) > 0 {
				return &Error{Kind: KindValidation, Status: status, Message: strings.Join(parts, ", ")}
			}
		}
		if res.IsArray() {
			var parts []string
			res.ForEach(func(_, item gjson.Result) bool {
				msg := item.Get("defaultMessage")
				if !msg.Exists() {
					msg = item.Get("message")
				}
				if msg.Exists() {
					parts = append(parts, msg.String())
				}
				return true
			})
			if len(parts) > 0 {
				return &Error{Kind: KindValidation, Status: status, Message: strings.Join(parts, ", ")}
			}
		}
	}

	if msg := res.Get("message"); msg.Exists() {
		return &Error{Kind: KindBusiness, Status: status, Message: msg.String()}
	}
	if msg := res.Get("error"); msg.Exists() {
		return &Error{Kind: KindBusiness, Status: status, Message: msg.String()}
	}

	return &Error{
		Kind:    KindHTTP,
		Status:  status,
		Message: fmt.Sprintf("Error %d: %s", status, http.StatusText(status)),
	}
}
