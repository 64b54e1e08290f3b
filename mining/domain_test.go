package mining

import "testing"

func TestDetectDomain(t *testing.T) {
	tests := []struct {
		name  string
		seeds []string
		text  string
		want  string
	}{
		{
			name:  "email deliverability seeds",
			seeds: []string{"email deliverability", "spf dkim"},
			want:  "email_deliverability",
		},
		{
			name:  "seo seeds",
			seeds: []string{"seo optimization", "keyword research"},
			want:  "seo_marketing",
		},
		{
			name:  "ecommerce seeds",
			seeds: []string{"ecommerce platform", "shopify"},
			want:  "ecommerce",
		},
		{
			name:  "crm seeds",
			seeds: []string{"crm system", "sales automation"},
			want:  "crm_sales",
		},
		{
			name:  "legal services text",
			seeds: []string{"disability benefits"},
			text:  "Legal services and social security disability benefits with appeals process representation.",
			want:  "legal_social_services",
		},
		{
			name:  "no signal falls back to general",
			seeds: []string{"gutter guards"},
			text:  "leaf protection for residential roofing",
			want:  DomainGeneral,
		},
		{
			name:  "empty input",
			seeds: nil,
			text:  "",
			want:  DomainGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDomain(tt.seeds, tt.text); got != tt.want {
				t.Errorf("DetectDomain() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDomainPatterns(t *testing.T) {
	if patterns := DomainPatterns("email_deliverability"); len(patterns) == 0 {
		t.Error("email_deliverability should have extraction patterns")
	}
	// legal_social_services is detection-only.
	if patterns := DomainPatterns("legal_social_services"); patterns != nil {
		t.Errorf("legal_social_services should be detection-only, got %d patterns", len(patterns))
	}
	if patterns := DomainPatterns("no_such_vertical"); patterns != nil {
		t.Errorf("unknown vertical should have no patterns, got %d", len(patterns))
	}
}

func TestDomains_Order(t *testing.T) {
	domains := Domains()
	if len(domains) != 11 {
		t.Fatalf("Domains() returned %d verticals, want 11", len(domains))
	}
	if domains[0] != "email_deliverability" {
		t.Errorf("first registered vertical = %q, want email_deliverability", domains[0])
	}
	if domains[len(domains)-1] != "legal_social_services" {
		t.Errorf("last registered vertical = %q, want legal_social_services", domains[len(domains)-1])
	}
}
