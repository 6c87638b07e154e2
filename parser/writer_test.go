package parser

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rhartert/longpath/graph/paths"
)

func TestWritePath(t *testing.T) {
	testCases := []struct {
		desc string
		path paths.Path
		want string
	}{
		{
			desc: "empty path",
			path: paths.Path{},
			want: "",
		},
		{
			desc: "single vertex",
			path: paths.Path{Vertices: []int64{7}},
			want: "7\r\n",
		},
		{
			desc: "several vertices",
			path: paths.Path{Vertices: []int64{1, -20, 300}, Distance: 8},
			want: "1\r\n-20\r\n300\r\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			buf := &bytes.Buffer{}

			if err := WritePath(buf, tc.path); err != nil {
				t.Fatalf("WritePath(): want no error, got %s", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("WritePath(): want %q, got %q", tc.want, got)
			}
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWritePath_writeError(t *testing.T) {
	err := WritePath(failingWriter{}, paths.Path{Vertices: []int64{1, 2}})

	if err == nil {
		t.Errorf("WritePath(): want error, got nil")
	}
}
