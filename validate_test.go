package protoreg

import "testing"

func validationCodes(errs []error) []string {
	var codes []string
	for _, err := range errs {
		if v, ok := err.(*ValidationError); ok {
			codes = append(codes, v.Code)
		}
	}
	return codes
}

func hasValidationCode(errs []error, code string) bool {
	for _, c := range validationCodes(errs) {
		if c == code {
			return true
		}
	}
	return false
}

func TestValidate_CleanRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.apps = []AppEntry{{
		Name: "library",
		Controllers: []ControllerEntry{{
			Name: "PostController",
			Methods: []MethodEntry{
				{
					Name:     "List",
					Request:  MethodIO{Message: "PostListRequest"},
					Response: MethodIO{Message: "PostListResponse"},
				},
				{
					Name:     "Destroy",
					Request:  MethodIO{Message: "PostDestroyRequest"},
					Response: MethodIO{Message: "google.protobuf.Empty"},
				},
			},
		}},
		Messages: []MessageEntry{
			{Name: "PostListRequest"},
			{Name: "PostListResponse", Fields: []MessageField{{Name: "results", Type: "repeated PostResponse"}}},
			{Name: "PostDestroyRequest", Fields: []MessageField{{Name: "id", Type: "int32"}}},
		},
	}}

	if errs := reg.Validate(); len(errs) != 0 {
		t.Errorf("expected no validation errors, got %v", errs)
	}
}

func TestValidate_Findings(t *testing.T) {
	tests := []struct {
		name string
		app  AppEntry
		want string
	}{
		{
			"empty message name",
			AppEntry{Name: "library", Messages: []MessageEntry{{Name: ""}}},
			"empty_message_name",
		},
		{
			"duplicate message",
			AppEntry{Name: "library", Messages: []MessageEntry{{Name: "Post"}, {Name: "Post"}}},
			"duplicate_message",
		},
		{
			"duplicate method",
			AppEntry{
				Name: "library",
				Controllers: []ControllerEntry{{
					Name: "PostController",
					Methods: []MethodEntry{
						{Name: "Get", Request: MethodIO{Message: "Post"}, Response: MethodIO{Message: "Post"}},
						{Name: "Get", Request: MethodIO{Message: "Post"}, Response: MethodIO{Message: "Post"}},
					},
				}},
				Messages: []MessageEntry{{Name: "Post"}},
			},
			"duplicate_method",
		},
		{
			"empty message reference",
			AppEntry{
				Name: "library",
				Controllers: []ControllerEntry{{
					Name:    "PostController",
					Methods: []MethodEntry{{Name: "Get", Response: MethodIO{Message: "Post"}}},
				}},
				Messages: []MessageEntry{{Name: "Post"}},
			},
			"empty_message_reference",
		},
		{
			"missing message reference",
			AppEntry{
				Name: "library",
				Controllers: []ControllerEntry{{
					Name: "PostController",
					Methods: []MethodEntry{{
						Name:     "Get",
						Request:  MethodIO{Message: "NeverRegistered"},
						Response: MethodIO{Message: "Post"},
					}},
				}},
				Messages: []MessageEntry{{Name: "Post"}},
			},
			"missing_message_reference",
		},
		{
			"double repeated marker",
			AppEntry{
				Name: "library",
				Controllers: []ControllerEntry{{
					Name: "PostController",
					Methods: []MethodEntry{{
						Name:     "Get",
						Request:  MethodIO{Message: "Post"},
						Response: MethodIO{Message: "repeated repeated Post"},
					}},
				}},
				Messages: []MessageEntry{{Name: "Post"}},
			},
			"double_repeated",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := NewRegistry()
			reg.apps = []AppEntry{tt.app}

			errs := reg.Validate()
			if !hasValidationCode(errs, tt.want) {
				t.Errorf("expected validation code %s, got %v", tt.want, validationCodes(errs))
			}
		})
	}
}

func TestValidate_RepeatedReferenceResolves(t *testing.T) {
	reg := NewRegistry()
	reg.apps = []AppEntry{{
		Name: "library",
		Controllers: []ControllerEntry{{
			Name: "PostController",
			Methods: []MethodEntry{{
				Name:     "Tags",
				Request:  MethodIO{Message: "Post"},
				Response: MethodIO{Message: "repeated Post"},
			}},
		}},
		Messages: []MessageEntry{{Name: "Post"}},
	}}

	if errs := reg.Validate(); len(errs) != 0 {
		t.Errorf("expected repeated reference to a registered message to pass, got %v", errs)
	}
}

func TestValidate_CollectsAllFindings(t *testing.T) {
	reg := NewRegistry()
	reg.apps = []AppEntry{{
		Name: "library",
		Controllers: []ControllerEntry{{
			Name: "PostController",
			Methods: []MethodEntry{{
				Name:     "Get",
				Request:  MethodIO{Message: "MissingA"},
				Response: MethodIO{Message: "MissingB"},
			}},
		}},
	}}

	errs := reg.Validate()
	if len(errs) != 2 {
		t.Errorf("expected 2 findings, got %d: %v", len(errs), errs)
	}
}
