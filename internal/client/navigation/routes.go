package navigation

import "errors"

var (
	ErrRouteNotMounted = errors.New("route not mounted")
	ErrMissingParam    = errors.New("missing route parameter")
)

// Route names a screen.
type Route string

const (
	RouteLogin          Route = "Login"
	RouteMainTabs       Route = "MainTabs"
	RouteHome           Route = "Home"
	RouteGive           Route = "Give"
	RouteEvents         Route = "Events"
	RouteCheckIn        Route = "Check-in"
	RouteMore           Route = "More"
	RouteGroups         Route = "Groups"
	RouteWorship        Route = "Worship"
	RouteScheduleDetail Route = "ScheduleDetail"
	RouteKids           Route = "Kids"
	RouteDevotional     Route = "Devotional"
	RouteProfile        Route = "Profile"
	RouteEventDetails   Route = "EventDetails"
)

// Route parameter keys.
const (
	ParamScheduleID = "scheduleID"
	ParamEventID    = "eventID"
)

// Params is the optional payload of a location.
type Params map[string]string

// Location is one entry of the navigation history.
type Location struct {
	Route  Route
	Params Params
}

// Param returns the named parameter, "" when absent.
func (l Location) Param(key string) string {
	return l.Params[key]
}

// tabRoutes are the bottom tabs in display order.
var tabRoutes = []Route{RouteHome, RouteGive, RouteEvents, RouteCheckIn, RouteMore}

// stackRoutes are pushed on top of the tabs.
var stackRoutes = []Route{
	RouteGroups, RouteWorship, RouteScheduleDetail, RouteKids,
	RouteDevotional, RouteProfile, RouteEventDetails,
}

// requiredParams lists the parameters a route cannot be opened without.
var requiredParams = map[Route]string{
	RouteScheduleDetail: ParamScheduleID,
	RouteEventDetails:   ParamEventID,
}
