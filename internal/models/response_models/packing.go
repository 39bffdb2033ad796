package response_models

type PackingItem struct {
	Item string `json:"item"`
	Why  string `json:"why"`
	Qty  string `json:"qty"`
}

type PackingList struct {
	Season                   string        `json:"season"`
	Essentials               []PackingItem `json:"essentials"`
	Clothing                 []PackingItem `json:"clothing"`
	Footwear                 []PackingItem `json:"footwear"`
	ToiletriesHealth         []PackingItem `json:"toiletries_health"`
	Gadgets                  []PackingItem `json:"gadgets"`
	DocumentsMoney           []PackingItem `json:"documents_money"`
	OptionalActivitySpecific []PackingItem `json:"optional_activity_specific"`
}
