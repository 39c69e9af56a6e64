package buildinfo

const Graffiti = " ____      _    _   _  ____  ___  \n|  _ \\    / \\  | \\ | |/ ___|/ _ \\ \n| |_) |  / _ \\ |  \\| | |  _| | | |\n|  _ <  / ___ \\| |\\  | |_| | |_| |\n|_| \\_\\/_/   \\_\\_| \\_|\\____|\\___/ \n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "RANGO"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
