package parser

import (
	"bufio"
	"io"
	"strconv"

	"github.com/rhartert/longpath/graph/paths"
)

// WritePath writes the vertices of p to w, one per line, each line being
// terminated by "\r\n". Nothing is written if p is empty.
func WritePath(w io.Writer, p paths.Path) error {
	if p.Empty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for _, id := range p.Vertices {
		buf = strconv.AppendInt(buf[:0], id, 10)
		buf = append(buf, '\r', '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
