package bustracker

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("routes", func() {
	Describe("GetRoutes", func() {
		It("keys routes by id", func() {
			server, _ := busTimeServer(routesXML)
			DeferCleanup(server.Close)

			routes, err := newTestClient(server).GetRoutes()

			Expect(err).NotTo(HaveOccurred())
			Expect(routes).To(HaveLen(2))
			Expect(routes["20"].Name).To(Equal("Madison"))
			Expect(routes["60"].Name).To(Equal("Blue Island/26th"))
		})

		It("fails when a route is missing its name", func() {
			server, _ := busTimeServer(`<bustime-response>
				<route>
					<rt>20</rt>
				</route>
			</bustime-response>`)
			DeferCleanup(server.Close)

			_, err := newTestClient(server).GetRoutes()

			Expect(err).To(MatchError(ErrMalformedResponse))
		})
	})

	Describe("GetRouteDirections", func() {
		It("returns the directions in response order", func() {
			server, queries := busTimeServer(`<bustime-response>
				<dir>East Bound</dir>
				<dir>West Bound</dir>
			</bustime-response>`)
			DeferCleanup(server.Close)

			directions, err := newTestClient(server).GetRouteDirections("20")

			Expect(err).NotTo(HaveOccurred())
			Expect(directions).To(Equal([]string{"East Bound", "West Bound"}))

			query := <-queries
			Expect(query.Get("rt")).To(Equal("20"))
		})
	})
})
