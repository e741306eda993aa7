package restapi

import "net/http"

// liveryCSSHandler serves the generated per-livery stylesheet consumed by
// the map frontend's train markers.
func (api *RestAPI) liveryCSSHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")

	if _, err := w.Write([]byte(api.Manager.LiveryCSS())); err != nil {
		api.serverErrorResponse(w, r, err)
	}
}
