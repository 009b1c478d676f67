package ecobee

// Status is the vendor's per-response result code. Code 0 is success; any
// other code arrives with an HTTP error status and surfaces as an APIError.
type Status struct {
	Code    *int
	Message *string
}

func init() {
	registerType("Status", []fieldDef{
		{name: "Code", wire: "code", typ: tInt},
		{name: "Message", wire: "message", typ: tString},
	}, func(fs fieldSet) Object {
		return &Status{
			Code:    fs.integer("Code"),
			Message: fs.str("Message"),
		}
	})
}

// TypeName implements Object.
func (s *Status) TypeName() string { return "Status" }

func (s *Status) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putInt("Code", s.Code)
	fs.putString("Message", s.Message)
	return fs
}

// Page describes one page of a paged thermostat listing.
type Page struct {
	Page       *int
	TotalPages *int
	PageSize   *int
	Total      *int
}

func init() {
	registerType("Page", []fieldDef{
		{name: "Page", wire: "page", typ: tInt},
		{name: "TotalPages", wire: "totalPages", typ: tInt},
		{name: "PageSize", wire: "pageSize", typ: tInt},
		{name: "Total", wire: "total", typ: tInt},
	}, func(fs fieldSet) Object {
		return &Page{
			Page:       fs.integer("Page"),
			TotalPages: fs.integer("TotalPages"),
			PageSize:   fs.integer("PageSize"),
			Total:      fs.integer("Total"),
		}
	})
}

// TypeName implements Object.
func (p *Page) TypeName() string { return "Page" }

func (p *Page) encodeFields() fieldSet {
	fs := fieldSet{}
	fs.putInt("Page", p.Page)
	fs.putInt("TotalPages", p.TotalPages)
	fs.putInt("PageSize", p.PageSize)
	fs.putInt("Total", p.Total)
	return fs
}
