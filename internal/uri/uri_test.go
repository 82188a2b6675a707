package uri

import (
	"fmt"
	"testing"
)

func TestFromPath(t *testing.T) {
	testCases := []struct {
		RawPath     string
		ExpectedURI string
	}{
		{
			RawPath:     "/random/path",
			ExpectedURI: "file:///random/path",
		},
		{
			RawPath:     "/path/with/trailing/separator/",
			ExpectedURI: "file:///path/with/trailing/separator",
		},
		{
			RawPath:     "/path/with spaces",
			ExpectedURI: "file:///path/with%20spaces",
		},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			uri := FromPath(tc.RawPath)
			if uri != tc.ExpectedURI {
				t.Fatalf("URI doesn't match.\nexpected: %q\ngiven: %q",
					tc.ExpectedURI, uri)
			}
		})
	}
}

func TestPathFromURI(t *testing.T) {
	testCases := []struct {
		URI          string
		ExpectedPath string
	}{
		{
			URI:          "file:///random/path",
			ExpectedPath: "/random/path",
		},
		{
			URI:          "file:///path/with/trailing/separator/",
			ExpectedPath: "/path/with/trailing/separator",
		},
		{
			URI:          "file:///path/with%20spaces",
			ExpectedPath: "/path/with spaces",
		},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			path, err := PathFromURI(tc.URI)
			if err != nil {
				t.Fatal(err)
			}
			if path != tc.ExpectedPath {
				t.Fatalf("Path doesn't match.\nexpected: %q\ngiven: %q",
					tc.ExpectedPath, path)
			}
		})
	}
}

func TestIsURIValid(t *testing.T) {
	testCases := []struct {
		URI      string
		Expected bool
	}{
		{URI: "file:///valid/path", Expected: true},
		{URI: "https://example.com", Expected: false},
		{URI: "output:extension-output", Expected: false},
		{URI: "", Expected: false},
	}
	for i, tc := range testCases {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			given := IsURIValid(tc.URI)
			if given != tc.Expected {
				t.Fatalf("Unexpected validity of %q: %t", tc.URI, given)
			}
		})
	}
}
