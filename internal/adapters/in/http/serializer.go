package http

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var wireJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONSerializer plugs json-iterator into echo for request decoding and
// response encoding.
type JSONSerializer struct{}

// Serialize writes the response body as JSON.
func (JSONSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := wireJSON.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize reads the request body into i. Malformed JSON is a client
// error, not a server one.
func (JSONSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := wireJSON.NewDecoder(c.Request().Body).Decode(i)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest,
			fmt.Sprintf("invalid request body: %v", err)).SetInternal(err)
	}
	return nil
}
