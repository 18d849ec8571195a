package batch

import "sync"

// workerPool runs submitted tasks on a fixed set of goroutines. Unlike a
// long-lived pool, it exists for one RunAll call: submit everything, then
// wait drains the queue and stops the workers.
type workerPool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

func newWorkerPool(workers int) *workerPool {
	if workers <= 0 {
		workers = 1
	}

	pool := &workerPool{
		tasks: make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

func (p *workerPool) submit(task func()) {
	p.tasks <- task
}

// wait closes the queue and blocks until every submitted task has finished.
func (p *workerPool) wait() {
	close(p.tasks)
	p.wg.Wait()
}
