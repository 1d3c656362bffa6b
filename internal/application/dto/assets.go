package dto

type ListAssetsQuery struct{}

type ListAssetsOutput struct {
	Assets []AssetResource `json:"assets"`
}

type RegisterAssetCommand struct {
	Identity string `json:"identity"`
}

type RegisterAssetOutput struct {
	Asset AssetResource `json:"asset"`
}

type AssetResource struct {
	Identity string `json:"identity"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
	Name     string `json:"name"`
	Native   bool   `json:"native"`
}

// AssetMetadata is what the ledger bridge reports for a token contract.
type AssetMetadata struct {
	Symbol   string
	Decimals int
	Name     string
}
