package mongo

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildInternshipsQuery(t *testing.T) {
	t.Parallel()
	Convey("Given no filters are provided, then an empty selector is built", t, func() {
		So(buildInternshipsQuery("", "", ""), ShouldResemble, bson.M{})
	})

	Convey("Given a state filter, then the selector matches on state", t, func() {
		So(buildInternshipsQuery("open", "", ""), ShouldResemble, bson.M{"state": "open"})
	})

	Convey("Given an employer filter, then the selector matches on employer_id", t, func() {
		So(buildInternshipsQuery("", "employer-1", ""), ShouldResemble, bson.M{"employer_id": "employer-1"})
	})

	Convey("Given an institution filter, then the selector matches on institution_id", t, func() {
		So(buildInternshipsQuery("", "", "institution-1"), ShouldResemble, bson.M{"institution_id": "institution-1"})
	})

	Convey("Given all filters, then the selector matches on all of them", t, func() {
		So(buildInternshipsQuery("closed", "employer-1", "institution-1"), ShouldResemble, bson.M{
			"state":          "closed",
			"employer_id":    "employer-1",
			"institution_id": "institution-1",
		})
	})
}

func TestBuildApplicationsQuery(t *testing.T) {
	t.Parallel()
	Convey("Given no filters are provided, then an empty selector is built", t, func() {
		So(buildApplicationsQuery("", "", nil), ShouldResemble, bson.M{})
	})

	Convey("Given an internship filter, then the selector matches on internship_id", t, func() {
		So(buildApplicationsQuery("internship-1", "", nil), ShouldResemble, bson.M{"internship_id": "internship-1"})
	})

	Convey("Given a student filter, then the selector matches on student_id", t, func() {
		So(buildApplicationsQuery("", "student-1", nil), ShouldResemble, bson.M{"student_id": "student-1"})
	})

	Convey("Given a status filter, then the selector matches any of the statuses", t, func() {
		So(buildApplicationsQuery("", "", []string{"pending", "reviewed"}), ShouldResemble, bson.M{
			"status": bson.M{"$in": []string{"pending", "reviewed"}},
		})
	})

	Convey("Given an empty status list, then no status clause is built", t, func() {
		So(buildApplicationsQuery("internship-1", "", []string{}), ShouldResemble, bson.M{"internship_id": "internship-1"})
	})
}
