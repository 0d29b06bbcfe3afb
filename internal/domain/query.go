package domain

// MaxSearchResults - жёсткий лимит выдачи поиска, применяется после всех фильтров и сортировки
const MaxSearchResults = 100

// AttributeFilter - фильтры по атрибутам, объединяются через AND.
// nil-граница означает отсутствие ограничения.
type AttributeFilter struct {
	MinPrice *float64
	MaxPrice *float64
	MinArea  *float64
	MaxArea  *float64
	RoomType RoomType
	Status   RoomStatus
}

// Normalize отбрасывает границы <= 0: они трактуются как отсутствующие, а не как ограничение.
func (f AttributeFilter) Normalize() AttributeFilter {
	f.MinPrice = positiveOrNil(f.MinPrice)
	f.MaxPrice = positiveOrNil(f.MaxPrice)
	f.MinArea = positiveOrNil(f.MinArea)
	f.MaxArea = positiveOrNil(f.MaxArea)
	return f
}

func positiveOrNil(v *float64) *float64 {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

// RoomQuery - провалидированный дескриптор запроса к хранилищу.
// Задано не более одного гео-ограничения: BoundingBox или Radius.
type RoomQuery struct {
	BoundingBox *BoundingBox
	Radius      *RadiusQuery

	// AddressPatterns - ILIKE шаблоны по адресу (сужение по району), совпадение с любым
	AddressPatterns []string

	// DistanceFrom - если задано, выдача сортируется по расстоянию от точки по возрастанию
	DistanceFrom *Coordinate

	Attributes AttributeFilter
	Limit      int
}
