package authinfo_test

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/edgekit/authinfo"
)

func Example() {
	dec := authinfo.New("gateway-shared-secret")

	h := http.Header{}
	h.Set("x-auth-info", `{"t":0,"c":"abcde12345","a":false,"r":[],"ip":"127.0.0.1"}`)
	h.Set("x-auth-info-signed", "0")

	ac, err := dec.Decode(h)
	if err != nil {
		var de *authinfo.Error
		if errors.As(err, &de) {
			fmt.Println(de.Subcode)
		}
		return
	}

	fmt.Println(ac.ClientID)
	// Output: abcde12345
}

func ExampleDecoder_Middleware() {
	dec := authinfo.New("gateway-shared-secret")

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		ac, ok := authinfo.AuthFromContext(r.Context())
		if ok {
			fmt.Fprintln(w, ac.ClientID)
		}
	})

	_ = dec.Middleware()(mux)
}
