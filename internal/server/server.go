package server

// Server объединяет HTTP-серверы отдельных сущностей. Сейчас он один.
type Server struct {
	WidgetServer
}

func NewServer(
	widgetServer WidgetServer,
) Server {
	return Server{
		WidgetServer: widgetServer,
	}
}
