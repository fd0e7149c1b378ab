// Package navigation keeps an in-memory screen history for front ends that
// have no router of their own, such as the terminal form.
//
//	stack := navigation.NewStack("CreatePardna")
//	stack.OnNavigate(func(r navigation.Route) { fmt.Println("now at", r.Screen) })
//	stack.Navigate("Pardna", map[string]string{"id": id})
package navigation
