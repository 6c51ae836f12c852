package dto

type ValidateMovementRequest struct {
	ProductID int    `json:"productId"`
	Quantity  int    `json:"quantity"`
	Direction string `json:"direction"`
}

type ValidateBatchRequest struct {
	Direction string              `json:"direction"`
	Items     []ValidateBatchItem `json:"items"`
}

type ValidateBatchItem struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}
