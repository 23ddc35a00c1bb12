package models

// EcologicRecord é uma linha bruta da tabela ecologic_products_site,
// nos nomes/idioma do fornecedor. Campos numéricos e booleanos chegam
// como texto porque a tabela do fornecedor não é tipada de forma estrita.
type EcologicRecord struct {
	ID              int64          `json:"id" db:"id"`
	Codigo          string         `json:"codigo" db:"codigo"`
	Titulo          string         `json:"titulo" db:"titulo"`
	Descricao       string         `json:"descricao" db:"descricao"`
	Categoria       string         `json:"categoria" db:"categoria"`
	Img0            string         `json:"img_0" db:"img_0"`
	Img1            string         `json:"img_1" db:"img_1"`
	Img2            string         `json:"img_2" db:"img_2"`
	Variacoes       []ColorVariant `json:"variacoes" db:"variacoes"`
	Preco           string         `json:"preco" db:"preco"`
	Status          string         `json:"status" db:"status"`
	Promocao        string         `json:"promocao" db:"promocao"`
	Altura          string         `json:"altura" db:"altura"`
	Largura         string         `json:"largura" db:"largura"`
	Comprimento     string         `json:"comprimento" db:"comprimento"`
	Peso            string         `json:"peso" db:"peso"`
	CorWebPrincipal string         `json:"cor_web_principal" db:"cor_web_principal"`
	StatusActive    bool           `json:"status_active" db:"status_active"`
}

// ColorVariant é uma variação de cor do fornecedor (cor + imagem)
type ColorVariant struct {
	Cor       string `json:"cor"`
	LinkImage string `json:"link_image"`
}

// Product é a forma normalizada consumida pelo site
type Product struct {
	ID                     string           `json:"id"`
	Name                   string           `json:"name"`
	Description            string           `json:"description"`
	Category               string           `json:"category"`
	Images                 []string         `json:"images"`
	SustainabilityFeatures []string         `json:"sustainabilityFeatures"`
	CustomizationOptions   []string         `json:"customizationOptions"`
	Price                  float64          `json:"price"`
	InStock                bool             `json:"inStock"`
	Featured               bool             `json:"featured"`
	IsEcological           bool             `json:"isEcological"`
	IsExternal             bool             `json:"isExternal"`
	ExternalSource         string           `json:"externalSource"`
	Supplier               string           `json:"supplier"`
	SupplierCode           string           `json:"supplierCode,omitempty"`
	Reference              string           `json:"reference,omitempty"`
	EcologicDatabaseID     int64            `json:"ecologicDatabaseId,omitempty"`
	AllImages              []string         `json:"allImages"`
	Dimensions             Dimensions       `json:"dimensions"`
	PrimaryColor           string           `json:"primaryColor,omitempty"`
	ColorVariations        []ColorVariation `json:"colorVariations"`
}

// ColorVariation é o par cor/imagem já normalizado
type ColorVariation struct {
	Color string `json:"color"`
	Image string `json:"image"`
}

// Dimensions agrupa as medidas físicas; cada campo é opcional de forma
// independente (ausente fica nulo, nunca zero)
type Dimensions struct {
	Height *float64 `json:"height,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Length *float64 `json:"length,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

// Pagination acompanha toda resposta paginada da API
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`
	HasNextPage  bool `json:"hasNextPage"`
	HasPrevPage  bool `json:"hasPrevPage"`
}
