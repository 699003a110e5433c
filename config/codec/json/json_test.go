package json

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serverConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

func TestCodec_Parse_EntireDocument(t *testing.T) {
	t.Parallel()

	codec := NewCodec()

	data := []byte(`{
  "host": "localhost",
  "port": 8080
}`)

	var result serverConfig

	err := codec.Parse(data, &result, "")

	require.NoError(t, err)
	assert.Equal(t, serverConfig{Host: "localhost", Port: 8080}, result)
}

func TestCodec_Parse_KeepsExistingValues(t *testing.T) {
	t.Parallel()

	codec := NewCodec()
	result := serverConfig{Host: "default-host", Port: 80}

	err := codec.Parse([]byte(`{"port": 9090}`), &result, "")

	require.NoError(t, err)
	assert.Equal(t, serverConfig{Host: "default-host", Port: 9090}, result)
}

func TestCodec_Parse_SingleLevelSection(t *testing.T) {
	t.Parallel()

	codec := NewCodec()

	data := []byte(`{
  "api": {"host": "localhost", "port": 8080},
  "database": {"host": "db.example.com"}
}`)

	var result serverConfig

	err := codec.Parse(data, &result, "api")

	require.NoError(t, err)
	assert.Equal(t, "localhost", result.Host)
	assert.Equal(t, 8080, result.Port)
}

func TestCodec_Parse_MultiLevelSection(t *testing.T) {
	t.Parallel()

	codec := NewCodec()

	data := []byte(`{"database": {"connection": {"host": "db.example.com", "port": 5432}}}`)

	var result serverConfig

	err := codec.Parse(data, &result, "database:connection")

	require.NoError(t, err)
	assert.Equal(t, serverConfig{Host: "db.example.com", Port: 5432}, result)
}

func TestCodec_Parse_SectionToScalarList(t *testing.T) {
	t.Parallel()

	codec := NewCodec()

	data := []byte(`{"allowed": {"origins": ["a.example.com", "b.example.com"]}}`)

	var result []string

	err := codec.Parse(data, &result, "allowed:origins")

	require.NoError(t, err)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, result)
}

func TestCodec_Parse_SectionNotFound(t *testing.T) {
	t.Parallel()

	codec := NewCodec()

	var result serverConfig

	err := codec.Parse([]byte(`{"api": {"host": "localhost"}}`), &result, "admin")

	require.Error(t, err)
	require.ErrorIs(t, err, ErrSectionNotFound)
	assert.Contains(t, err.Error(), "admin")
}

func TestCodec_Parse_SectionKeepsNumberText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		number   string
		expected float64
	}{
		{name: "positive exponent", number: "1e3", expected: 1000},
		{name: "upper case exponent", number: "2E10", expected: 2e10},
		{name: "small exponent", number: "1e-7", expected: 1e-7},
		{name: "smallest denormal", number: "5e-324", expected: 5e-324},
		{name: "large exponent", number: "1e+21", expected: 1e21},
		{name: "negative zero", number: "-0", expected: math.Copysign(0, -1)},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			data := []byte(`{"limits": {"ratio": ` + testCase.number + `}}`)

			var result struct {
				Ratio float64 `json:"ratio"`
			}

			err := NewCodec().Parse(data, &result, "limits")

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, result.Ratio)
			assert.Equal(t, math.Signbit(testCase.expected), math.Signbit(result.Ratio))
		})
	}
}

func TestCodec_Parse_SectionRoundTrip(t *testing.T) {
	t.Parallel()

	type limits struct {
		Ratio float64 `json:"ratio"`
		Tiny  float64 `json:"tiny"`
		Huge  float64 `json:"huge"`
		Count int64   `json:"count"`
		Label string  `json:"label"`
	}

	original := limits{
		Ratio: 0.5,
		Tiny:  1e-7,
		Huge:  3.5e22,
		Count: math.MaxInt64,
		Label: "tab\there \"quoted\" \u00e9 <tag> \u2028",
	}

	codec := NewCodec()

	data, err := codec.Encode(map[string]map[string]limits{"profiles": {"work": original}})
	require.NoError(t, err)

	var loaded limits

	err = codec.Parse(data, &loaded, "profiles:work")

	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestCodec_Parse_NullSectionKeepsTarget(t *testing.T) {
	t.Parallel()

	result := serverConfig{Host: "default-host", Port: 80}

	err := NewCodec().Parse([]byte(`{"api": null}`), &result, "api")

	require.NoError(t, err)
	assert.Equal(t, serverConfig{Host: "default-host", Port: 80}, result)
}

func TestCodec_Parse_SectionThroughNonObject(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		section string
	}{
		{name: "through scalar", data: `{"api": 1}`, section: "api:host"},
		{name: "through array", data: `{"api": [{"host": "a"}]}`, section: "api:host"},
		{name: "through null", data: `{"api": null}`, section: "api:host"},
		{name: "top level array", data: `[1, 2]`, section: "api"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var result serverConfig

			err := NewCodec().Parse([]byte(testCase.data), &result, testCase.section)

			require.ErrorIs(t, err, ErrSectionNotFound)
		})
	}
}

func TestCodec_Parse_SectionMalformedDocument(t *testing.T) {
	t.Parallel()

	var result serverConfig

	err := NewCodec().Parse([]byte(`{"api": {"host": `), &result, "api")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSectionNotFound)
}

func TestCodec_Parse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		data    string
		wantErr error
	}{
		{name: "nil data", data: "", wantErr: ErrEmptyData},
		{name: "whitespace", data: " \n ", wantErr: ErrEmptyData},
		{name: "trailing value", data: `{"host": "a"} {"host": "b"}`, wantErr: ErrTrailingData},
		{name: "trailing garbage", data: `{"host": "a"} }`, wantErr: ErrTrailingData},
		{name: "malformed", data: `{"host": `, wantErr: nil},
		{name: "wrong type", data: `{"port": "eighty"}`, wantErr: nil},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var result serverConfig

			err := NewCodec().Parse([]byte(testCase.data), &result, "")
			require.Error(t, err)

			if testCase.wantErr != nil {
				require.ErrorIs(t, err, testCase.wantErr)
			}
		})
	}
}

func TestCodec_Parse_Strict(t *testing.T) {
	t.Parallel()

	data := []byte(`{"host": "localhost", "port": 1, "debug": true}`)

	var lenient serverConfig

	err := NewCodec().Parse(data, &lenient, "")
	require.NoError(t, err)

	var strict serverConfig

	err = NewCodec(WithStrict()).Parse(data, &strict, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown field "debug"`)
}

func TestCodec_Encode(t *testing.T) {
	t.Parallel()

	data, err := NewCodec().Encode(serverConfig{Host: "localhost", Port: 8080})

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"host\": \"localhost\",\n  \"port\": 8080\n}\n", string(data))
}

func TestCodec_Encode_NoHTMLEscaping(t *testing.T) {
	t.Parallel()

	data, err := NewCodec().Encode(map[string]string{"query": "a<b && c>d"})

	require.NoError(t, err)
	assert.Contains(t, string(data), `"a<b && c>d"`)
}

func TestCodec_Encode_Indent(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		indent   string
		expected string
	}{
		{name: "tab", indent: "\t", expected: "{\n\t\"host\": \"h\",\n\t\"port\": 1\n}\n"},
		{name: "four spaces", indent: "    ", expected: "{\n    \"host\": \"h\",\n    \"port\": 1\n}\n"},
		{name: "empty keeps default", indent: "", expected: "{\n  \"host\": \"h\",\n  \"port\": 1\n}\n"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			data, err := NewCodec(WithIndent(testCase.indent)).Encode(serverConfig{Host: "h", Port: 1})

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, string(data))
		})
	}
}

func TestCodec_Encode_Unsupported(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		value any
	}{
		{name: "NaN", value: math.NaN()},
		{name: "infinity", value: map[string]float64{"x": math.Inf(1)}},
		{name: "channel", value: make(chan int)},
		{name: "function", value: func() {}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			data, err := NewCodec().Encode(testCase.value)

			require.Error(t, err)
			assert.Nil(t, data)
		})
	}
}

func TestConvertToYAMLPath(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		section  string
		expected string
	}{
		{section: "key", expected: "$.key"},
		{section: "api:permissions", expected: "$.api.permissions"},
		{section: "a:b:c", expected: "$.a.b.c"},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.section, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, convertToYAMLPath(testCase.section))
		})
	}
}
