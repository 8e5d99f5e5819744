package urlfor

import (
	"fmt"
	"html/template"

	"github.com/vitalvas/paramkit/params"
)

// FuncMap returns template functions bound to the helper:
//
//	request_params               RequestParams
//	query_params                 QueryParams
//	query_params_from_request    QueryParamsFromRequestParams
//	params_for_url               ParamsForURL
//	merge_params PATCH...        MergeParams
//	slice_params KEY...          SliceParams
//	merge_url_for PATCH...       MergeURLFor
//	add_params PATCH...          AddParams
//	add_params_to URL PATCH...   AddParamsTo
//
// PATCH is either a single params.Tree or map[string]any, or a list of
// key/value pairs. A nil value removes the key:
//
//	<a href="{{ merge_url_for "page" 2 "sort" nil }}">next</a>
func (h *Helper) FuncMap() template.FuncMap {
	return template.FuncMap{
		"request_params":            h.RequestParams,
		"query_params":              h.QueryParams,
		"query_params_from_request": h.QueryParamsFromRequestParams,
		"params_for_url":            h.ParamsForURL,
		"slice_params":              h.SliceParams,
		"merge_params": func(args ...any) (params.Tree, error) {
			patch, err := patchFromArgs(args)
			if err != nil {
				return nil, err
			}
			return h.MergeParams(patch), nil
		},
		"merge_url_for": func(args ...any) (string, error) {
			patch, err := patchFromArgs(args)
			if err != nil {
				return "", err
			}
			return h.MergeURLFor(patch)
		},
		"add_params": func(args ...any) (string, error) {
			patch, err := patchFromArgs(args)
			if err != nil {
				return "", err
			}
			return h.AddParams(patch)
		},
		"add_params_to": func(rawURL string, args ...any) (string, error) {
			patch, err := patchFromArgs(args)
			if err != nil {
				return "", err
			}
			return h.AddParamsTo(rawURL, patch)
		},
	}
}

// patchFromArgs converts template arguments into a patch tree.
func patchFromArgs(args []any) (params.Tree, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case params.Tree:
			return v, nil
		case map[string]any:
			return params.FromMap(v), nil
		}
	}

	if len(args)%2 != 0 {
		return nil, fmt.Errorf("urlfor: number of parameters must be multiple of 2, got %d", len(args))
	}

	patch := make(params.Tree, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			return nil, fmt.Errorf("urlfor: parameter name at position %d is %T, not string", i, args[i])
		}
		patch[key] = params.Of(args[i+1])
	}
	return patch, nil
}
