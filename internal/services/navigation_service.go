package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"yourtour/internal/models/response_models"
	"yourtour/pkg/utils"
)

const (
	metersPerMile = 1609.34
	userAgent     = "YourTour/1.0"
)

type RouteStep struct {
	Miles       float64
	Instruction string
}

type Route struct {
	Miles   float64
	Minutes int
	Steps   []RouteStep
}

type Place struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type NavigationServiceInterface interface {
	Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*Place, error)
	NearestCity(lat, lon float64) (*response_models.NearestCityResponse, error)
	Route(ctx context.Context, startLat, startLon, endLat, endLon float64) (*Route, error)
}

// --------- route cache keyed on the coordinate pair ---------

type routeKey struct {
	Start string
	End   string
}

type routeCacheEntry struct {
	Route     Route
	ExpiresAt time.Time
}

type routeCache struct {
	mu    sync.RWMutex
	store map[routeKey]routeCacheEntry
}

func newRouteCache() *routeCache {
	return &routeCache{store: make(map[routeKey]routeCacheEntry)}
}

func (c *routeCache) get(k routeKey) (Route, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[k]
	if !ok || time.Now().After(it.ExpiresAt) {
		return Route{}, false
	}
	return it.Route, true
}

func (c *routeCache) set(k routeKey, v Route, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[k] = routeCacheEntry{Route: v, ExpiresAt: time.Now().Add(ttl)}
}

// -------------- service ---------------

type NavigationService struct {
	HTTP          *http.Client
	NominatimBase string
	OSRMBase      string
	Cache         *routeCache
	DefaultTTL    time.Duration
}

func NewNavigationService() NavigationServiceInterface {
	return &NavigationService{
		HTTP:          &http.Client{Timeout: 15 * time.Second},
		NominatimBase: "https://nominatim.openstreetmap.org",
		OSRMBase:      "https://routing.openstreetmap.de/routed-car",
		Cache:         newRouteCache(),
		DefaultTTL:    24 * time.Hour,
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (n *NavigationService) Geocode(ctx context.Context, address string) (*response_models.GeocodeResponse, error) {
	if strings.TrimSpace(address) == "" {
		return nil, utils.ErrValidation
	}

	endpoint := fmt.Sprintf("%s/search?format=json&q=%s", n.NominatimBase, url.QueryEscape(address))
	var results []nominatimResult
	if err := n.getJSON(ctx, endpoint, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, utils.ErrNoGeocodingResult
	}

	var lat, lon float64
	if _, err := fmt.Sscanf(results[0].Lat, "%f", &lat); err != nil {
		return nil, fmt.Errorf("%w: bad latitude %q", utils.ErrUpstream, results[0].Lat)
	}
	if _, err := fmt.Sscanf(results[0].Lon, "%f", &lon); err != nil {
		return nil, fmt.Errorf("%w: bad longitude %q", utils.ErrUpstream, results[0].Lon)
	}

	return &response_models.GeocodeResponse{
		Latitude:         lat,
		Longitude:        lon,
		FormattedAddress: results[0].DisplayName,
	}, nil
}

type nominatimReverse struct {
	Address struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		Village string `json:"village"`
		State   string `json:"state"`
		Country string `json:"country"`
	} `json:"address"`
}

func (n *NavigationService) ReverseGeocode(ctx context.Context, lat, lon float64) (*Place, error) {
	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f", n.NominatimBase, lat, lon)
	var result nominatimReverse
	if err := n.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}

	city := result.Address.City
	if city == "" {
		city = result.Address.Town
	}
	if city == "" {
		city = result.Address.Village
	}
	if city == "" || result.Address.State == "" {
		return nil, utils.ErrNoGeocodingResult
	}

	return &Place{
		City:    city,
		State:   result.Address.State,
		Country: result.Address.Country,
	}, nil
}

// NearestCity picks from the reference city table by weighing proximity
// against population. Keep the coefficients stable: badge triggers depend on
// which city a coordinate resolves to.
func (n *NavigationService) NearestCity(lat, lon float64) (*response_models.NearestCityResponse, error) {
	type weighted struct {
		city   referenceCity
		weight float64
	}

	candidates := make([]weighted, 0, len(referenceCities))
	for _, city := range referenceCities {
		distance := haversineMiles(lat, lon, city.Lat, city.Lon)
		weight := 0.6*(1-distance/50) + 0.4*(float64(city.Population)/1000000)
		candidates = append(candidates, weighted{city: city, weight: weight})
	}
	if len(candidates) == 0 {
		return nil, utils.ErrNoGeocodingResult
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].weight > candidates[j].weight
	})

	top := candidates[0].city
	return &response_models.NearestCityResponse{City: top.Name, State: top.State}, nil
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Legs     []struct {
			Steps []struct {
				Distance float64 `json:"distance"`
				Name     string  `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

func (n *NavigationService) Route(ctx context.Context, startLat, startLon, endLat, endLon float64) (*Route, error) {
	key := routeKey{
		Start: fmt.Sprintf("%.5f,%.5f", startLon, startLat),
		End:   fmt.Sprintf("%.5f,%.5f", endLon, endLat),
	}
	if cached, ok := n.Cache.get(key); ok {
		return &cached, nil
	}

	endpoint := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=false&alternatives=false&steps=true",
		n.OSRMBase, key.Start, key.End)

	var result osrmResponse
	if err := n.getJSON(ctx, endpoint, &result); err != nil {
		return nil, err
	}
	if len(result.Routes) == 0 {
		return nil, utils.ErrNoGeocodingResult
	}

	osrmRoute := result.Routes[0]
	route := Route{
		Miles:   roundMiles(osrmRoute.Distance),
		Minutes: int(math.Ceil(osrmRoute.Duration / 60)),
	}
	for _, leg := range osrmRoute.Legs {
		for _, step := range leg.Steps {
			route.Steps = append(route.Steps, RouteStep{
				Miles:       roundMiles(step.Distance),
				Instruction: describeStep(step.Maneuver.Type, step.Maneuver.Modifier, step.Name),
			})
		}
	}

	n.Cache.set(key, route, n.DefaultTTL)
	return &route, nil
}

func (n *NavigationService) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d from %s", utils.ErrUpstream, resp.StatusCode, endpoint)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", utils.ErrUpstream, err)
	}
	return nil
}

func roundMiles(meters float64) float64 {
	return math.Round(meters/metersPerMile*100) / 100
}

func describeStep(maneuverType, modifier, road string) string {
	var action string
	switch maneuverType {
	case "depart":
		action = "Head out"
	case "arrive":
		return "You have arrived at your destination"
	case "turn", "end of road", "fork":
		action = "Turn"
		if modifier != "" {
			action = "Turn " + modifier
		}
	case "merge":
		action = "Merge"
	case "on ramp":
		action = "Take the ramp"
	case "off ramp":
		action = "Take the exit"
	case "roundabout", "rotary":
		action = "Enter the roundabout"
	case "continue":
		action = "Continue"
		if modifier != "" && modifier != "straight" {
			action = "Continue " + modifier
		}
	default:
		action = "Continue"
	}

	if road != "" {
		return fmt.Sprintf("%s onto %s", action, road)
	}
	return action
}

func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusMiles = 3958.8

	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
