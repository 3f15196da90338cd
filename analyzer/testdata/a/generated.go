// Code generated by hand for testing. DO NOT EDIT.

package a

type generatedHolder struct {
	payload []byte
}

func newGeneratedHolder() generatedHolder {
	return generatedHolder{payload: []byte("gen")}
}

func (g generatedHolder) size() int {
	local := []byte("local")

	return len(g.payload) + len(local)
}

func (v *victim) reset() {
	v.data = nil
}
