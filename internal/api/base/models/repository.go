package basemodels

// PaginateResult carries one page of items together with paging metadata.
type PaginateResult[T any] struct {
	Items     []T   `json:"items" bson:"items"`
	Page      int64 `json:"page" bson:"page"`
	Limit     int64 `json:"limit" bson:"limit"`
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	Total     int64 `json:"total" bson:"total"`
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
