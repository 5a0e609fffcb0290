package bustracker

import (
	"net/url"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const timeXML = `<?xml version="1.0"?>
<bustime-response>
	<tm>20100523 10:31:05</tm>
</bustime-response>`

var _ = Describe("Client", func() {
	Describe("request URLs", func() {
		It("targets the versioned API root and carries the key", func() {
			client := New("TESTKEY")

			parsed, err := url.Parse(client.buildURL("gettime", nil))

			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Scheme).To(Equal("http"))
			Expect(parsed.Host).To(Equal("www.ctabustracker.com"))
			Expect(parsed.Path).To(Equal("/bustime/api/v1/gettime"))
			Expect(parsed.Query().Get("key")).To(Equal("TESTKEY"))
		})

		It("URL-encodes parameter values", func() {
			client := New("TESTKEY")

			built := client.buildURL("getstops", map[string]string{"rt": "20", "dir": "East Bound"})

			Expect(built).To(ContainSubstring("dir=East+Bound"))

			parsed, err := url.Parse(built)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Query().Get("rt")).To(Equal("20"))
			Expect(parsed.Query().Get("dir")).To(Equal("East Bound"))
		})
	})

	Describe("GetTime", func() {
		It("parses the system clock", func() {
			server, queries := busTimeServer(timeXML)
			DeferCleanup(server.Close)

			when, err := newTestClient(server).GetTime()

			Expect(err).NotTo(HaveOccurred())
			Expect(when).To(BeTemporally("==", time.Date(2010, time.May, 23, 10, 31, 5, 0, time.UTC)))

			query := <-queries
			Expect(query.Get("key")).To(Equal("TESTKEY"))
		})

		It("fails when the response has no tm element", func() {
			server, _ := busTimeServer(`<bustime-response></bustime-response>`)
			DeferCleanup(server.Close)

			_, err := newTestClient(server).GetTime()

			Expect(err).To(MatchError(ErrMalformedResponse))
		})

		It("fails on an unparseable clock value", func() {
			server, _ := busTimeServer(`<bustime-response><tm>half past ten</tm></bustime-response>`)
			DeferCleanup(server.Close)

			_, err := newTestClient(server).GetTime()

			Expect(err).To(MatchError(ErrMalformedResponse))
		})
	})
})
