package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigTaraiPrefix = ConfigPrefix + delimiter + "tarai"

	ConfigLogPrefix     = ConfigTaraiPrefix + delimiter + "log"
	ConfigLogBufferSize = ConfigLogPrefix + delimiter + "buffer_size"

	ConfigBenchPrefix     = ConfigTaraiPrefix + delimiter + "bench"
	ConfigBenchIterations = ConfigBenchPrefix + delimiter + "iterations"

	ConfigSweepPrefix     = ConfigTaraiPrefix + delimiter + "sweep"
	ConfigSweepMin        = ConfigSweepPrefix + delimiter + "min"
	ConfigSweepMax        = ConfigSweepPrefix + delimiter + "max"
	ConfigSweepNumWorkers = ConfigSweepPrefix + delimiter + "num_workers"
	ConfigSweepBufferSize = ConfigSweepPrefix + delimiter + "buffer_size"
	ConfigSweepNaiveSpan  = ConfigSweepPrefix + delimiter + "naive_span"
)
