package form

// File is an attached file value.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// Values holds the submitted value of every field by name.
type Values struct {
	text  map[string]string
	files map[string][]File
}

func NewValues() Values {
	return Values{text: map[string]string{}, files: map[string][]File{}}
}

func (v Values) Set(name, value string) Values {
	v.text[name] = value
	return v
}

func (v Values) Get(name string) string {
	return v.text[name]
}

func (v Values) Has(name string) bool {
	_, ok := v.text[name]
	return ok
}

func (v Values) AddFile(name string, f File) Values {
	v.files[name] = append(v.files[name], f)
	return v
}

func (v Values) Files(name string) []File {
	return v.files[name]
}

// Merge returns initial overridden by every value set in changes.
func Merge(initial, changes Values) Values {
	out := NewValues()
	for k, s := range initial.text {
		out.text[k] = s
	}
	for k, s := range changes.text {
		out.text[k] = s
	}
	for k, f := range initial.files {
		out.files[k] = f
	}
	for k, f := range changes.files {
		out.files[k] = f
	}
	return out
}
