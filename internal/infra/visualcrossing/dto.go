package visualcrossing

// timelineResponse mirrors the subset of the Visual Crossing timeline API
// response that pyweather consumes (include=days).
type timelineResponse struct {
	ResolvedAddress string        `json:"resolvedAddress"`
	Timezone        string        `json:"timezone"`
	Days            []timelineDay `json:"days"`
}

type timelineDay struct {
	Datetime    string   `json:"datetime"`
	TempMax     *float64 `json:"tempmax"`
	TempMin     *float64 `json:"tempmin"`
	PrecipProb  *float64 `json:"precipprob"`
	WindSpeed   *float64 `json:"windspeed"`
	Humidity    *float64 `json:"humidity"`
	Conditions  string   `json:"conditions"`
	Description string   `json:"description"`
}
