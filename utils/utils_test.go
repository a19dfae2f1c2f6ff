package utils

import (
	"net/url"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	errs "github.com/edulink/internship-api/apierrors"
)

func TestValidatePositiveInt(t *testing.T) {
	Convey("Given a valid positive int parameter, the value is returned", t, func() {
		val, err := ValidatePositiveInt("7")
		So(err, ShouldBeNil)
		So(val, ShouldEqual, 7)
	})

	Convey("Given a zero parameter, the value is returned", t, func() {
		val, err := ValidatePositiveInt("0")
		So(err, ShouldBeNil)
		So(val, ShouldEqual, 0)
	})

	Convey("Given a negative int parameter, an invalid query parameter error is returned", t, func() {
		val, err := ValidatePositiveInt("-5")
		So(err, ShouldEqual, errs.ErrInvalidQueryParameter)
		So(val, ShouldEqual, -1)
	})

	Convey("Given a non numeric parameter, an invalid query parameter error is returned", t, func() {
		val, err := ValidatePositiveInt("seven")
		So(err, ShouldEqual, errs.ErrInvalidQueryParameter)
		So(val, ShouldEqual, -1)
	})
}

func TestGetQueryParamListValues(t *testing.T) {
	Convey("Given a query with a comma separated list of values, all values are returned", t, func() {
		queryVars := url.Values{"status": []string{"pending,reviewed"}}
		items, err := GetQueryParamListValues(queryVars, "status", 10)
		So(err, ShouldBeNil)
		So(items, ShouldResemble, []string{"pending", "reviewed"})
	})

	Convey("Given a query with repeated keys, all values are returned", t, func() {
		queryVars := url.Values{"status": []string{"pending", "accepted"}}
		items, err := GetQueryParamListValues(queryVars, "status", 10)
		So(err, ShouldBeNil)
		So(items, ShouldResemble, []string{"pending", "accepted"})
	})

	Convey("Given a query without the key, an empty list is returned", t, func() {
		queryVars := url.Values{}
		items, err := GetQueryParamListValues(queryVars, "status", 10)
		So(err, ShouldBeNil)
		So(items, ShouldResemble, []string{})
	})

	Convey("Given a query with more values than allowed, an error is returned", t, func() {
		queryVars := url.Values{"status": []string{"pending,reviewed,accepted"}}
		items, err := GetQueryParamListValues(queryVars, "status", 2)
		So(err, ShouldEqual, errs.ErrTooManyQueryParameters)
		So(items, ShouldResemble, []string{})
	})
}
