package response_models

type IntercityOption struct {
	Mode       string `json:"mode"`
	From       string `json:"from"`
	To         string `json:"to"`
	Time       string `json:"time"`
	ApproxCost string `json:"approx_cost"`
	ProTip     string `json:"pro_tip"`
}

type InCityOption struct {
	Mode       string `json:"mode"`
	WhenToUse  string `json:"when_to_use"`
	ApproxCost string `json:"approx_cost"`
	Coverage   string `json:"coverage"`
	ProTip     string `json:"pro_tip"`
}

// TransportOptions covers both getting to the destination and moving
// around once there.
type TransportOptions struct {
	Intercity []IntercityOption `json:"intercity"`
	InCity    []InCityOption    `json:"in_city"`
}
