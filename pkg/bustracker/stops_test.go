package bustracker

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const stopsXML = `<?xml version="1.0"?>
<bustime-response>
	<stop>
		<stpid>4727</stpid>
		<stpnm>Madison &amp; Central</stpnm>
		<lat>41.880541992188</lat>
		<lon>-87.76547241211</lon>
	</stop>
	<stop>
		<stpid>4728</stpid>
		<stpnm>Madison &amp; Parkside</stpnm>
		<lat>41.880538940429</lat>
	</stop>
	<stop>
		<stpid>4729</stpid>
		<stpnm>Madison &amp; Waller</stpnm>
		<lat>41.88054</lat>
		<lon>-87.772766113281</lon>
	</stop>
</bustime-response>`

var _ = Describe("GetRouteStops", func() {
	It("keys stops by id and passes the route and direction", func() {
		server, queries := busTimeServer(stopsXML)
		DeferCleanup(server.Close)

		stops, err := newTestClient(server).GetRouteStops("20", "East Bound")

		Expect(err).NotTo(HaveOccurred())
		Expect(stops["4727"].Name).To(Equal("Madison & Central"))
		Expect(stops["4727"].Latitude).To(Equal(41.880541992188))
		Expect(stops["4727"].Longitude).To(Equal(-87.76547241211))

		query := <-queries
		Expect(query.Get("rt")).To(Equal("20"))
		Expect(query.Get("dir")).To(Equal("East Bound"))
	})

	It("skips stops that are not fully described", func() {
		server, _ := busTimeServer(stopsXML)
		DeferCleanup(server.Close)

		stops, err := newTestClient(server).GetRouteStops("20", "East Bound")

		Expect(err).NotTo(HaveOccurred())
		Expect(stops).To(HaveLen(2))
		Expect(stops).NotTo(HaveKey("4728"))
	})

	It("fails when a coordinate is present but unreadable", func() {
		server, _ := busTimeServer(`<bustime-response>
			<stop>
				<stpid>4727</stpid>
				<stpnm>Madison &amp; Central</stpnm>
				<lat>garbage</lat>
				<lon>-87.76547241211</lon>
			</stop>
		</bustime-response>`)
		DeferCleanup(server.Close)

		_, err := newTestClient(server).GetRouteStops("20", "East Bound")

		Expect(err).To(MatchError(ErrMalformedResponse))
	})
})
