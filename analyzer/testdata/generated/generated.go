// Code generated by hand for testing. DO NOT EDIT.

package generated

type generatedHolder struct {
	payload []byte // want "Field 'payload' of 'generatedHolder' is only initialized from constants"
	ignored []byte //nolint:constbytes
}

func newGeneratedHolder() generatedHolder {
	return generatedHolder{payload: []byte("gen"), ignored: []byte("nolint")}
}

func (g generatedHolder) size() int {
	local := []byte("local") // want "Variable 'local' is only initialized from constants"

	return len(g.payload) + len(g.ignored) + len(local)
}
