package schema

// Default returns the registry the console starts with. Adding a model here
// is all it takes to get its table, endpoints and UI; no other code changes.
func Default() *Registry {
	return NewRegistry(map[string]Fields{
		"Car": {
			"brand":   {Kind: FieldText, Required: true, Label: "Brand", MinLength: intp(2), MaxLength: intp(50)},
			"model":   {Kind: FieldText, Required: true, Label: "Model", MinLength: intp(1), MaxLength: intp(50)},
			"year":    {Kind: FieldNumber, Required: true, Label: "Year", Min: floatp(1900), Max: floatp(2030)},
			"price":   {Kind: FieldNumber, Required: true, Label: "Price (₱)", Min: floatp(0), Max: floatp(100000000)},
			"inStock": {Kind: FieldBoolean, Label: "In Stock", Default: true},
		},
		"Movie": {
			"title":       {Kind: FieldText, Required: true, Label: "Title", MinLength: intp(1), MaxLength: intp(200)},
			"director":    {Kind: FieldText, Required: true, Label: "Director", MinLength: intp(2), MaxLength: intp(100)},
			"year":        {Kind: FieldNumber, Required: true, Label: "Release Year", Min: floatp(1888), Max: floatp(2030)},
			"releaseDate": {Kind: FieldDate, Label: "Release Date"},
			"genre":       {Kind: FieldText, Label: "Genre", Options: []string{"Action", "Comedy", "Drama", "Horror", "Sci-Fi", "Romance"}},
			"rating":      {Kind: FieldNumber, Label: "Rating (1-10)", Min: floatp(1), Max: floatp(10)},
		},
	})
}

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
