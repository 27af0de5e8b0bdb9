package http

import (
	"net/http"

	"github.com/srad-secure/srad-backend-go/internal/domain/region"
	"github.com/srad-secure/srad-backend-go/internal/handler/http/response"
	"github.com/srad-secure/srad-backend-go/internal/service/travel"
)

type RegionHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Travel(w http.ResponseWriter, r *http.Request)
	Corridors(w http.ResponseWriter, r *http.Request)
}

type RegionHandlerImpl struct{}

type travelResponse struct {
	Origin      region.Region `json:"origin"`
	Destination region.Region `json:"destination"`
	Minutes     int           `json:"minutes"`
}

// List implements RegionHandler. ?state=DF|GO narrows the catalogue.
func (h *RegionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	state := region.State(r.URL.Query().Get("state"))
	if state == "" {
		response.Success(w, region.All())
		return
	}
	if !state.Valid() {
		response.HandleError(w, region.ErrUnknownState)
		return
	}

	infos := make([]region.Info, 0)
	for _, info := range region.All() {
		if info.State == state {
			infos = append(infos, info)
		}
	}
	response.Success(w, infos)
}

// Travel implements RegionHandler.
func (h *RegionHandlerImpl) Travel(w http.ResponseWriter, r *http.Request) {
	origin, err := region.Parse(r.URL.Query().Get("origin"))
	if err != nil {
		response.BadRequest(w, "Invalid origin region", map[string]string{"origin": err.Error()})
		return
	}
	destination, err := region.Parse(r.URL.Query().Get("destination"))
	if err != nil {
		response.BadRequest(w, "Invalid destination region", map[string]string{"destination": err.Error()})
		return
	}

	response.Success(w, travelResponse{
		Origin:      origin,
		Destination: destination,
		Minutes:     travel.ResolveTravelMinutes(origin, destination),
	})
}

// Corridors implements RegionHandler.
func (h *RegionHandlerImpl) Corridors(w http.ResponseWriter, r *http.Request) {
	response.Success(w, travel.Corridors())
}

func NewRegionHandler() RegionHandler {
	return &RegionHandlerImpl{}
}
