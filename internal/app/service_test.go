package service_test

import (
	"context"
	"math"
	"testing"

	service "github.com/YellowCow9/nba-sim/internal/app"
	"github.com/YellowCow9/nba-sim/internal/domain/model"
	"github.com/YellowCow9/nba-sim/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// testShots builds a small dataset with one shot per zone at the default
// 23.75 ft arc. Distances are in feet, locations in decifeet.
func testShots() []model.ShotRecord {
	return []model.ShotRecord{
		{Distance: 4, LocX: 10, LocY: 40, Made: true},    // Paint
		{Distance: 4, LocX: 15, LocY: 35, Made: false},   // Paint
		{Distance: 12, LocX: 60, LocY: 100, Made: true},  // Short Mid-Range
		{Distance: 19, LocX: 120, LocY: 150, Made: true}, // Long Mid-Range
		{Distance: 23, LocX: 225, LocY: 30, Made: true},  // Corner 3
		{Distance: 25, LocX: 180, LocY: 175, Made: true}, // Wing 3
		{Distance: 25, LocX: 0, LocY: 250, Made: false},  // Top of Key 3
	}
}

func startedService(t *testing.T, opts ...service.Option) *service.Service {
	t.Helper()
	opts = append([]service.Option{service.WithShots(testShots())}, opts...)
	svc := service.New(opts...)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("failed to start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a service with an injected dataset", t, func() {
		svc := service.New(service.WithShots(testShots()))

		Convey("When simulating before Start", func() {
			_, err := svc.Simulate(context.Background(), 23.75)

			Convey("Then it fails with the not-started kind", func() {
				So(err, ShouldEqual, service.ErrNotStarted)
			})
		})

		Convey("When started twice", func() {
			So(svc.Start(context.Background()), ShouldBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			svc.Stop()
		})
	})

	Convey("Given a service pointed at a missing dataset file", t, func() {
		svc := service.New(service.WithDataPath("/nonexistent/shots.csv"))

		Convey("When started", func() {
			err := svc.Start(context.Background())

			Convey("Then startup fails", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceSimulate(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)

		Convey("When simulating at the baseline arc", func() {
			report, err := svc.Simulate(ctx, 23.75)

			Convey("Then every zone is active and ranked", func() {
				So(err, ShouldBeNil)
				So(report.ArcDistanceFt, ShouldEqual, 23.75)
				So(report.TotalAttempts, ShouldEqual, 7)
				So(len(report.Zones), ShouldEqual, 6)
				So(report.CornerActive, ShouldBeTrue)
				for i, z := range report.Zones {
					So(z.Rank, ShouldEqual, i+1)
					So(z.Active, ShouldBeTrue)
					So(z.Color, ShouldStartWith, "hsl(")
					So(z.ColorHex, ShouldStartWith, "#")
				}
			})

			Convey("Then ranking is by points per shot descending", func() {
				So(err, ShouldBeNil)
				for i := 1; i < len(report.Zones); i++ {
					So(report.Zones[i-1].PPS, ShouldBeGreaterThanOrEqualTo, report.Zones[i].PPS)
				}
			})

			Convey("Then deltas against the baseline are zero", func() {
				So(err, ShouldBeNil)
				for _, z := range report.Zones {
					if z.Delta != nil {
						So(*z.Delta, ShouldAlmostEqual, 0, 1e-12)
					}
				}
			})
		})

		Convey("When simulating with the arc pushed past the corner shots", func() {
			report, err := svc.Simulate(ctx, 29)

			Convey("Then the corner zone goes inactive but stays listed", func() {
				So(err, ShouldBeNil)
				So(report.CornerActive, ShouldBeFalse)

				var corner *int
				for i, z := range report.Zones {
					if z.Zone == model.ZoneCornerThree {
						corner = &i
						break
					}
				}
				So(corner, ShouldNotBeNil)
				So(report.Zones[*corner].Active, ShouldBeFalse)
				So(report.Zones[*corner].Attempts, ShouldEqual, 0)
				So(report.Zones[*corner].Delta, ShouldBeNil)
			})

			Convey("Then the former corner shot shows up as a long mid-range attempt", func() {
				So(err, ShouldBeNil)
				for _, z := range report.Zones {
					if z.Zone == model.ZoneLongMid {
						So(z.Attempts, ShouldBeGreaterThanOrEqualTo, 2)
					}
				}
			})
		})

		Convey("When the same arc is requested twice", func() {
			first, err1 := svc.Simulate(ctx, 24.5)
			second, err2 := svc.Simulate(ctx, 24.5)

			Convey("Then the cached result is identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(second, ShouldResemble, first)
			})
		})

		Convey("When volume shares are summed over active zones", func() {
			report, err := svc.Simulate(ctx, 23.75)

			Convey("Then they total one hundred percent", func() {
				So(err, ShouldBeNil)
				sum := 0.0
				for _, z := range report.Zones {
					sum += z.VolumeShare
				}
				So(math.Abs(sum-100), ShouldBeLessThan, 1e-9)
			})
		})
	})
}

func TestServiceLabeledShots(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)

		Convey("When fetching labeled shots", func() {
			shots, err := svc.LabeledShots(ctx, 23.75)

			Convey("Then every record carries a zone and point value", func() {
				So(err, ShouldBeNil)
				So(len(shots), ShouldEqual, 7)
				for _, s := range shots {
					So(s.Zone.Valid(), ShouldBeTrue)
					So(s.Points, ShouldBeIn, []int{0, 2, 3})
				}
			})

			Convey("Then made threes score three points", func() {
				So(err, ShouldBeNil)
				So(shots[4].Zone, ShouldEqual, model.ZoneCornerThree)
				So(shots[4].Points, ShouldEqual, 3)
			})
		})
	})
}

func TestServiceInvalidRecords(t *testing.T) {
	Convey("Given a dataset containing an unclassifiable record", t, func() {
		ctx := context.Background()
		shots := append(testShots(), model.ShotRecord{
			Distance: math.NaN(), LocX: 10, LocY: 10, Made: true,
		})
		svc := startedService(t, service.WithShots(shots))

		Convey("When simulating", func() {
			report, err := svc.Simulate(ctx, 23.75)

			Convey("Then the bad record is skipped and the rest aggregate", func() {
				So(err, ShouldBeNil)
				So(report.TotalAttempts, ShouldEqual, 7)
			})
		})
	})
}

func TestServiceGetStats(t *testing.T) {
	Convey("Given a started service", t, func() {
		ctx := context.Background()
		svc := startedService(t)

		Convey("When stats are read after a simulation", func() {
			_, err := svc.Simulate(ctx, 26)
			So(err, ShouldBeNil)
			stats := svc.GetStats()

			Convey("Then counters reflect the loaded dataset and cache", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["datasetShots"], ShouldEqual, 7)
				So(stats["baselineArcFt"], ShouldEqual, 23.75)
				So(stats["cacheEntries"], ShouldBeGreaterThanOrEqualTo, 1)
			})
		})
	})
}
