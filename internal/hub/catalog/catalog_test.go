package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/community-support-hub/server/internal/hub/model"
)

func res(id int, name, location string, tags ...model.ServiceTag) model.Resource {
	return model.Resource{ID: model.NumericID(id), Name: name, Location: location, Type: tags}
}

type stubFetcher struct {
	records []model.Resource
	err     error
	calls   int
}

func (s *stubFetcher) Fetch(ctx context.Context) ([]model.Resource, error) {
	s.calls++
	return s.records, s.err
}

func TestMerge_AppendsOnlyNewNames(t *testing.T) {
	base := []model.Resource{res(1, "A", "Nationwide"), res(2, "B", "Brooklyn, NY")}
	remote := []model.Resource{res(10, "B", "Elsewhere"), res(11, "C", "Queens, NY"), res(12, "D", "Chicago, IL")}

	merged := Merge(base, remote)

	require.Len(t, merged, 4)
	assert.Equal(t, base, merged[:2])
	assert.Equal(t, "C", merged[2].Name)
	assert.Equal(t, "D", merged[3].Name)
	assert.Equal(t, "Brooklyn, NY", merged[1].Location, "base record must win over remote duplicate")
}

func TestMerge_EmptyRemote(t *testing.T) {
	base := []model.Resource{res(1, "A", "Nationwide")}
	assert.Equal(t, base, Merge(base, nil))
}

func TestMerge_DuplicateNamesInsideRemoteKeptOnce(t *testing.T) {
	merged := Merge(nil, []model.Resource{res(1, "X", "a"), res(2, "X", "b")})
	require.Len(t, merged, 1)
	assert.Equal(t, "a", merged[0].Location)
}

func TestMerge_NamesCompareExactly(t *testing.T) {
	base := []model.Resource{res(1, "Safe Haven Housing", "Queens, NY")}
	remote := []model.Resource{res(2, "safe haven housing", "Nationwide"), res(3, "Safe Haven Housing ", "Nationwide")}

	merged := Merge(base, remote)

	require.Len(t, merged, 3)
	assert.Equal(t, "safe haven housing", merged[1].Name)
	assert.Equal(t, "Safe Haven Housing ", merged[2].Name)
}

func TestCatalog_LoadMergesOnce(t *testing.T) {
	c := New([]model.Resource{res(1, "A", "Nationwide")})
	f := &stubFetcher{records: []model.Resource{res(2, "B", "Queens, NY")}}

	assert.True(t, c.Load(context.Background(), f))
	assert.False(t, c.Load(context.Background(), f))

	assert.Equal(t, 1, f.calls)
	assert.Equal(t, 2, c.Len())
}

func TestCatalog_LoadFailureKeepsBase(t *testing.T) {
	base := []model.Resource{res(1, "A", "Nationwide")}
	c := New(base)

	c.Load(context.Background(), &stubFetcher{err: errors.New("connection refused")})

	assert.Equal(t, base, c.Records())
}

func TestCatalog_RecordsIsSnapshot(t *testing.T) {
	c := New([]model.Resource{res(1, "A", "Nationwide")})
	snap := c.Records()
	snap[0].Name = "mutated"
	assert.Equal(t, "A", c.Records()[0].Name)
}

func TestCatalog_NilBaseUsesDefaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, len(DefaultResources), c.Len())
}

func TestHTTPFetcher(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantErr   bool
		wantNames []string
	}{
		{
			name:      "success",
			status:    http.StatusOK,
			body:      `{"success":true,"data":[{"_id":"665f","name":"Harlem Healing Center","type":["trauma"],"location":"New York, NY","description":"d","phone":"p","verified":true},{"id":7,"name":"Second","location":"Nationwide"}]}`,
			wantNames: []string{"Harlem Healing Center", "Second"},
		},
		{
			name:      "skips nameless items",
			status:    http.StatusOK,
			body:      `{"success":true,"data":[{"location":"Nationwide"},{"name":"Kept"}]}`,
			wantNames: []string{"Kept"},
		},
		{name: "unsuccessful flag", status: http.StatusOK, body: `{"success":false,"data":[]}`, wantErr: true},
		{name: "wrong shape", status: http.StatusOK, body: `{"success":"yes","data":{}}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `<html>oops</html>`, wantErr: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/resources", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			f := NewHTTPFetcher(srv.URL+"/api/", time.Second)
			got, err := f.Fetch(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			names := make([]string, 0, len(got))
			for _, r := range got {
				names = append(names, r.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestHTTPFetcher_IDForms(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"_id":"abc123","name":"Mongo"},{"id":42,"name":"Numeric"}]}`))
	}))
	defer srv.Close()

	got, err := NewHTTPFetcher(srv.URL, time.Second).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, model.ResourceID("abc123"), got[0].ID)
	assert.Equal(t, model.ResourceID("42"), got[1].ID)
}

func TestDefaultResourcesInvariants(t *testing.T) {
	names := map[string]bool{}
	nationwide := 0
	for _, r := range DefaultResources {
		assert.NotEmpty(t, r.Name)
		assert.False(t, names[r.Name], "duplicate name %q", r.Name)
		names[r.Name] = true
		for _, tag := range r.Type {
			assert.True(t, tag.Valid(), "unknown tag %q on %q", tag, r.Name)
		}
		if r.IsNationwide() {
			nationwide++
		}
	}
	assert.Greater(t, nationwide, 0)
}
