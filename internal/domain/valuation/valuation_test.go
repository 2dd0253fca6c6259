package valuation_test

import (
	"testing"

	"github.com/YellowCow9/nba-sim/internal/domain/model"
	"github.com/YellowCow9/nba-sim/internal/domain/valuation"
	. "github.com/smartystreets/goconvey/convey"
)

func TestIsThree(t *testing.T) {
	Convey("Given the six zones", t, func() {
		Convey("Then exactly the three-point zones report three", func() {
			So(valuation.IsThree(model.ZoneWingThree), ShouldBeTrue)
			So(valuation.IsThree(model.ZoneCornerThree), ShouldBeTrue)
			So(valuation.IsThree(model.ZoneTopKeyThree), ShouldBeTrue)

			So(valuation.IsThree(model.ZonePaint), ShouldBeFalse)
			So(valuation.IsThree(model.ZoneShortMid), ShouldBeFalse)
			So(valuation.IsThree(model.ZoneLongMid), ShouldBeFalse)
		})

		Convey("And the mapping is total over the canonical order", func() {
			for _, z := range model.CanonicalOrder() {
				So(func() { valuation.IsThree(z) }, ShouldNotPanic)
			}
		})
	})
}

func TestPoints(t *testing.T) {
	Convey("Given zone and made flag combinations", t, func() {
		Convey("When the shot is made", func() {
			Convey("Then three-point zones score 3 and the rest score 2", func() {
				So(valuation.Points(model.ZoneCornerThree, true), ShouldEqual, 3)
				So(valuation.Points(model.ZoneWingThree, true), ShouldEqual, 3)
				So(valuation.Points(model.ZoneTopKeyThree, true), ShouldEqual, 3)
				So(valuation.Points(model.ZonePaint, true), ShouldEqual, 2)
				So(valuation.Points(model.ZoneShortMid, true), ShouldEqual, 2)
				So(valuation.Points(model.ZoneLongMid, true), ShouldEqual, 2)
			})
		})

		Convey("When the shot is missed", func() {
			Convey("Then every zone scores 0", func() {
				for _, z := range model.CanonicalOrder() {
					So(valuation.Points(z, false), ShouldEqual, 0)
				}
			})
		})
	})
}

func TestValue(t *testing.T) {
	Convey("Given a made corner shot", t, func() {
		rec := model.ShotRecord{Distance: 23, LocX: 225, LocY: 15, Made: true}

		Convey("When valued as a Corner 3", func() {
			valued := valuation.Value(rec, model.ZoneCornerThree)

			Convey("Then it carries the record, zone, and 3 points", func() {
				So(valued.Shot, ShouldResemble, rec)
				So(valued.Zone, ShouldEqual, model.ZoneCornerThree)
				So(valued.Points, ShouldEqual, 3)
			})
		})
	})
}
