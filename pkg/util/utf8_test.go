package util

import (
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ValidUTF8Reader", func() {
	It("passes valid text through unchanged", func() {
		reader := NewValidUTF8Reader(strings.NewReader("café au lait ☕"))

		data, err := io.ReadAll(reader)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("café au lait ☕"))
	})

	It("drops bytes that are not valid UTF-8", func() {
		reader := NewValidUTF8Reader(strings.NewReader("caf\xe9 latte"))

		data, err := io.ReadAll(reader)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("caf latte"))
	})

	It("keeps a literal replacement character", func() {
		reader := NewValidUTF8Reader(strings.NewReader("a�b"))

		data, err := io.ReadAll(reader)

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("a�b"))
	})

	It("handles input larger than its internal buffer", func() {
		text := strings.Repeat("Madison & Central \xff", 1024)
		expected := strings.Repeat("Madison & Central ", 1024)

		data, err := io.ReadAll(NewValidUTF8Reader(strings.NewReader(text)))

		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal(expected))
	})
})
