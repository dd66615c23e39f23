package swagger

import "sort"

// ProjectInfo is the template data generated from a Swagger document: the
// project name and per-tag API lists. JSON field names match the
// placeholders used by the documentation templates.
type ProjectInfo struct {
	Name string               `json:"name"`
	APIs map[string][]APIInfo `json:"apis"`
}

// APIInfo is the template data for one operation.
type APIInfo struct {
	Name         string        `json:"name"`
	Desc         string        `json:"desc"`
	URL          string        `json:"url"`
	Method       string        `json:"method"`
	APIType      string        `json:"api_type"`
	ReturnType   string        `json:"return_type"`
	QueryParams  []ParamInfo   `json:"query_params"`
	StatusCodes  []StatusCode  `json:"status_codes"`
	ReturnParams []ReturnParam `json:"return_params"`
}

// ParamInfo is one request parameter row.
type ParamInfo struct {
	Name      string `json:"name"`
	DataType  string `json:"data_type"`
	ParamType string `json:"param_type"`
	Required  string `json:"required"` // Y or N
	Desc      string `json:"desc"`
}

// StatusCode is one response status row.
type StatusCode struct {
	Code    string `json:"code"`
	Desc    string `json:"desc"`
	Explain string `json:"explain"`
}

// ReturnParam is one response field row.
type ReturnParam struct {
	Name     string `json:"name"`
	DataType string `json:"data_type"`
	Desc     string `json:"desc"`
}

// Project flattens a Swagger document into template data. Operations are
// bucketed under every tag they carry; tags without operations keep an empty
// list so templates can iterate them uniformly.
func Project(doc *Document) *ProjectInfo {
	info := &ProjectInfo{
		Name: doc.Info.Title,
		APIs: make(map[string][]APIInfo),
	}
	for _, tag := range doc.Tags {
		info.APIs[tag.Name] = []APIInfo{}
	}

	for _, url := range sortedKeys(doc.Paths) {
		methods := doc.Paths[url]
		for _, method := range sortedKeys(methods) {
			op := methods[method]
			api := APIInfo{
				Name:         op.Summary,
				Desc:         op.Summary,
				URL:          url,
				Method:       method,
				ReturnType:   "*/*",
				QueryParams:  queryParams(doc, op),
				StatusCodes:  statusCodes(op),
				ReturnParams: returnParams(doc, op),
			}
			for _, tag := range op.Tags {
				if _, ok := info.APIs[tag]; ok {
					info.APIs[tag] = append(info.APIs[tag], api)
				}
			}
		}
	}
	return info
}

// queryParams flattens an operation's parameters. A body parameter that
// references a definition expands into one row per definition property,
// prefixed with "body.".
func queryParams(doc *Document, op Operation) []ParamInfo {
	var params []ParamInfo
	for _, p := range op.Parameters {
		if p.Schema != nil {
			for _, bp := range definitionParams(doc, p.Schema) {
				bp.Name = "body." + bp.Name
				params = append(params, bp)
			}
			continue
		}
		params = append(params, ParamInfo{
			Name:      p.Name,
			DataType:  p.Type,
			ParamType: p.In,
			Required:  requiredFlag(p.Required),
			Desc:      p.Description,
		})
	}
	return params
}

func definitionParams(doc *Document, ref *SchemaRef) []ParamInfo {
	def, ok := doc.Definition(ref)
	if !ok {
		return nil
	}
	required := make(map[string]bool, len(def.Required))
	for _, name := range def.Required {
		required[name] = true
	}

	var params []ParamInfo
	for _, name := range sortedKeys(def.Properties) {
		prop := def.Properties[name]
		params = append(params, ParamInfo{
			Name:     name,
			DataType: prop.Type,
			Required: requiredFlag(required[name]),
			Desc:     prop.Description,
		})
	}
	return params
}

func statusCodes(op Operation) []StatusCode {
	var codes []StatusCode
	for _, code := range sortedKeys(op.Responses) {
		codes = append(codes, StatusCode{
			Code: code,
			Desc: op.Responses[code].Description,
		})
	}
	return codes
}

// returnParams expands the 200-response definition into one row per field.
func returnParams(doc *Document, op Operation) []ReturnParam {
	resp, ok := op.Responses["200"]
	if !ok || resp.Schema == nil {
		return nil
	}
	def, ok := doc.Definition(resp.Schema)
	if !ok {
		return nil
	}

	var params []ReturnParam
	for _, name := range sortedKeys(def.Properties) {
		prop := def.Properties[name]
		params = append(params, ReturnParam{
			Name:     "body." + name,
			DataType: prop.Type,
			Desc:     prop.Description,
		})
	}
	return params
}

func requiredFlag(required bool) string {
	if required {
		return "Y"
	}
	return "N"
}

// sortedKeys returns map keys in sorted order so generated documents are
// deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
